package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUserRolesTable, downCreateUserRolesTable)
}

func upCreateUserRolesTable(ctx context.Context, tx *sql.Tx) error {
	// The composite primary key makes a duplicate grant a constraint
	// violation the repository can absorb as a no-op.
	query := `
	CREATE TABLE user_roles (
	  user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	  role_id UUID NOT NULL REFERENCES roles (id) ON DELETE CASCADE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  PRIMARY KEY (user_id, role_id)
	);

	CREATE INDEX idx_user_roles_role_id ON user_roles (role_id);
	`

	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}

	return nil
}

func downCreateUserRolesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS user_roles;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
