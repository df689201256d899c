package repo

import "database/sql"

// InitSchema creates all tables if they do not exist. Intended for the dbtool
// and local runs; production deployments manage migrations separately.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS countries (
			id TEXT PRIMARY KEY,
			iso_code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS warehouses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			country_id TEXT NOT NULL REFERENCES countries(id)
		)`,
		`CREATE TABLE IF NOT EXISTS box_types (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			dim_label TEXT NOT NULL,
			price_lkr NUMERIC(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL,
			pw_hash TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS packages (
			id TEXT PRIMARY KEY,
			tracking_id TEXT NOT NULL UNIQUE,
			sender_name TEXT NOT NULL,
			sender_phone TEXT NOT NULL,
			receiver_name TEXT NOT NULL,
			receiver_phone TEXT NOT NULL,
			origin_wh_id TEXT NOT NULL REFERENCES warehouses(id),
			dest_wh_id TEXT NOT NULL REFERENCES warehouses(id),
			box_type_id TEXT NOT NULL REFERENCES box_types(id),
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_packages_tracking_id ON packages (tracking_id)`,
		`CREATE INDEX IF NOT EXISTS idx_packages_status ON packages (status)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
