package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrSchemaMissing means the registry tables are not present; run the migrations.
var ErrSchemaMissing = errors.New("registry schema not migrated")

const checkSchemaSQL = `SELECT to_regclass('observations') IS NOT NULL AND to_regclass('audit_logs') IS NOT NULL`

// CheckSchema verifies that the migrated registry tables are reachable through q.
func CheckSchema(ctx context.Context, q Querier) error {
	var ok bool
	if err := q.QueryRow(ctx, checkSchemaSQL).Scan(&ok); err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	if !ok {
		return ErrSchemaMissing
	}
	return nil
}
