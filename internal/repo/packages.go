package repo

import (
	"context"
	"errors"
	"time"

	"cargo-tracking-service/internal/model"
)

// ErrNotFound is returned when a lookup does not match any row.
var ErrNotFound = errors.New("not found")

type PackageRepository interface {
	Insert(ctx context.Context, pkg *model.Package) error
	UpdateStatus(ctx context.Context, id string, status model.Status, updatedAt time.Time) error
	FindByTrackingID(ctx context.Context, trackingID string) (*model.Package, error)
	List(ctx context.Context, offset, limit int) ([]model.Package, int, error)
	ListAll(ctx context.Context) ([]model.Package, error)
	CountByStatus(ctx context.Context) (map[model.Status]int, error)
}

type ReferenceRepository interface {
	WarehouseExists(ctx context.Context, id string) (bool, error)
	BoxTypeExists(ctx context.Context, id string) (bool, error)

	ListCountries(ctx context.Context) ([]model.Country, error)
	CreateCountry(ctx context.Context, c *model.Country) error
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	CreateWarehouse(ctx context.Context, w *model.Warehouse) error
	ListBoxTypes(ctx context.Context) ([]model.BoxType, error)
	CreateBoxType(ctx context.Context, bt *model.BoxType) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
}
