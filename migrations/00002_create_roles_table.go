package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateRolesTable, downCreateRolesTable)
}

func upCreateRolesTable(ctx context.Context, tx *sql.Tx) error {
	// Role names are case-sensitive, so the unique index is on the raw
	// column value: "Admin" and "admin" are two distinct roles.
	query := `
	CREATE TABLE roles (
	  id UUID PRIMARY KEY DEFAULT uuid_generate_v7(),
	  name VARCHAR(100) UNIQUE NOT NULL,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}

	return nil
}

func downCreateRolesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS roles;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
