package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cargo-tracking-service/internal/model"
)

type PostgresPackageRepo struct {
	db *sql.DB
}

func NewPostgresPackageRepo(db *sql.DB) *PostgresPackageRepo {
	return &PostgresPackageRepo{db: db}
}

const packageColumns = `
	id, tracking_id, sender_name, sender_phone, receiver_name, receiver_phone,
	origin_wh_id, dest_wh_id, box_type_id, status, created_at, updated_at
`

func (r *PostgresPackageRepo) Insert(ctx context.Context, pkg *model.Package) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO packages (
			id, tracking_id, sender_name, sender_phone, receiver_name, receiver_phone,
			origin_wh_id, dest_wh_id, box_type_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		pkg.ID,
		pkg.TrackingID,
		pkg.Sender.Name,
		pkg.Sender.Phone,
		pkg.Receiver.Name,
		pkg.Receiver.Phone,
		pkg.OriginWHID,
		pkg.DestWHID,
		pkg.BoxTypeID,
		string(pkg.Status),
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	return err
}

func (r *PostgresPackageRepo) UpdateStatus(ctx context.Context, id string, status model.Status, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE packages
		SET status = $2, updated_at = $3
		WHERE id = $1
	`, id, string(status), updatedAt)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPackageRepo) FindByTrackingID(ctx context.Context, trackingID string) (*model.Package, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		WHERE tracking_id = $1
	`, trackingID)

	pkg, err := scanPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *PostgresPackageRepo) List(ctx context.Context, offset, limit int) ([]model.Package, int, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM packages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	pkgs, err := collectPackages(rows)
	if err != nil {
		return nil, 0, err
	}
	return pkgs, total, nil
}

func (r *PostgresPackageRepo) ListAll(ctx context.Context) ([]model.Package, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPackages(rows)
}

func (r *PostgresPackageRepo) CountByStatus(ctx context.Context) (map[model.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, count(*)
		FROM packages
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[model.Status(status)] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (*model.Package, error) {
	var p model.Package
	var status string
	var updatedAt sql.NullTime

	if err := row.Scan(
		&p.ID,
		&p.TrackingID,
		&p.Sender.Name,
		&p.Sender.Phone,
		&p.Receiver.Name,
		&p.Receiver.Phone,
		&p.OriginWHID,
		&p.DestWHID,
		&p.BoxTypeID,
		&status,
		&p.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = model.Status(status)
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.Time
	}
	return &p, nil
}

func collectPackages(rows *sql.Rows) ([]model.Package, error) {
	var out []model.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
