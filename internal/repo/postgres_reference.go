package repo

import (
	"context"
	"database/sql"

	"cargo-tracking-service/internal/model"
)

type PostgresReferenceRepo struct {
	db *sql.DB
}

func NewPostgresReferenceRepo(db *sql.DB) *PostgresReferenceRepo {
	return &PostgresReferenceRepo{db: db}
}

func (r *PostgresReferenceRepo) WarehouseExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM warehouses WHERE id = $1)`, id)
}

func (r *PostgresReferenceRepo) BoxTypeExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM box_types WHERE id = $1)`, id)
}

func (r *PostgresReferenceRepo) exists(ctx context.Context, query, id string) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *PostgresReferenceRepo) ListCountries(ctx context.Context) ([]model.Country, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, iso_code, name
		FROM countries
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Country
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.ISOCode, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) CreateCountry(ctx context.Context, c *model.Country) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO countries (id, iso_code, name)
		VALUES ($1, $2, $3)
	`, c.ID, c.ISOCode, c.Name)
	return err
}

func (r *PostgresReferenceRepo) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, city, country_id
		FROM warehouses
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Warehouse
	for rows.Next() {
		var w model.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.City, &w.CountryID); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) CreateWarehouse(ctx context.Context, w *model.Warehouse) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO warehouses (id, name, city, country_id)
		VALUES ($1, $2, $3, $4)
	`, w.ID, w.Name, w.City, w.CountryID)
	return err
}

func (r *PostgresReferenceRepo) ListBoxTypes(ctx context.Context) ([]model.BoxType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, dim_label, price_lkr
		FROM box_types
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BoxType
	for rows.Next() {
		var bt model.BoxType
		if err := rows.Scan(&bt.ID, &bt.Code, &bt.DimLabel, &bt.PriceLKR); err != nil {
			return nil, err
		}
		out = append(out, bt)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) CreateBoxType(ctx context.Context, bt *model.BoxType) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO box_types (id, code, dim_label, price_lkr)
		VALUES ($1, $2, $3, $4)
	`, bt.ID, bt.Code, bt.DimLabel, bt.PriceLKR)
	return err
}
