// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, event_at, actor_user_id, entity_type, entity_id, action, old_data, new_data,
    host(ip_address), correlation_id`

const createSQL = `
INSERT INTO audit_logs (actor_user_id, entity_type, entity_id, action, old_data, new_data, ip_address, correlation_id)
VALUES ($1, $2, $3, $4, $5, $6, $7::inet, $8)
RETURNING ` + columns

const listByEntitySQL = `
SELECT ` + columns + `
FROM audit_logs
WHERE entity_type = $1 AND entity_id = $2
ORDER BY event_at DESC, id DESC
LIMIT $3`

const listByCorrelationSQL = `
SELECT ` + columns + `
FROM audit_logs
WHERE correlation_id = $1
ORDER BY id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted entry.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error) {
	oldJSON, err := marshalData(e.OldData)
	if err != nil {
		return nil, fmt.Errorf("audit_log marshal old_data: %w", err)
	}
	newJSON, err := marshalData(e.NewData)
	if err != nil {
		return nil, fmt.Errorf("audit_log marshal new_data: %w", err)
	}

	created, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		e.ActorUserID, string(e.EntityType), e.EntityID, string(e.Action), oldJSON, newJSON, e.IPAddress, e.CorrelationID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", e.EntityType.String()+"/"+e.EntityID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the change history of one entity, newest first,
// limited to limit records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs by entity: %w", err)
	}
	return collectEntries(rows)
}

// ListByCorrelation returns every entry of one logical operation in insertion order.
func (r *Repo) ListByCorrelation(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByCorrelationSQL, correlationID)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs by correlation: %w", err)
	}
	return collectEntries(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalData(data map[string]any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}

func collectEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_logs: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.AuditEntry, error) {
	var (
		e                domain.AuditEntry
		entityType       string
		action           string
		oldJSON, newJSON []byte
	)
	err := row.Scan(&e.ID, &e.EventAt, &e.ActorUserID, &entityType, &e.EntityID, &action,
		&oldJSON, &newJSON, &e.IPAddress, &e.CorrelationID)
	if err != nil {
		return nil, err
	}
	e.EntityType = domain.EntityType(entityType)
	e.Action = domain.AuditAction(action)

	if len(oldJSON) > 0 {
		if err := json.Unmarshal(oldJSON, &e.OldData); err != nil {
			return nil, fmt.Errorf("audit_log %d unmarshal old_data: %w", e.ID, err)
		}
	}
	if len(newJSON) > 0 {
		if err := json.Unmarshal(newJSON, &e.NewData); err != nil {
			return nil, fmt.Errorf("audit_log %d unmarshal new_data: %w", e.ID, err)
		}
	}
	return &e, nil
}
