// Package imports implements persistence of import batches using PostgreSQL.
// The uploaded bytes are kept in the row so validation can be re-run.
package imports

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/adapter/postgres/indicator"
	"github.com/pgic/pgic-backend/internal/domain"
)

// Repo provides import persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new import repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, indicator_id, file_name, format, content, status, validation_report,
    uploaded_by, created_at, updated_at, processed_at`

// listColumns omits content; listings never need the file bytes.
const listColumns = `id, indicator_id, file_name, format, ''::bytea AS content, status, validation_report,
    uploaded_by, created_at, updated_at, processed_at`

const createSQL = `
INSERT INTO imports (indicator_id, file_name, format, content, status, uploaded_by)
VALUES ($1, $2, $3, $4, 'uploaded', $5)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM imports WHERE id = $1`

const getForUpdateSQL = `SELECT ` + columns + ` FROM imports WHERE id = $1 FOR UPDATE`

const updateStatusSQL = `
UPDATE imports SET
    status            = $2::text,
    validation_report = $3,
    processed_at      = CASE WHEN $2::text = 'processed' THEN now() END
WHERE id = $1
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an import with its content.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Import, error) {
	imp, err := scanImport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "import", id)
	}
	return imp, nil
}

// GetForUpdate returns an import and locks its row until the enclosing
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Import, error) {
	imp, err := scanImport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "import", id)
	}
	return imp, nil
}

// List returns imports matching filter, newest first, without content.
func (r *Repo) List(ctx context.Context, filter domain.ImportFilter) ([]domain.Import, error) {
	q := psql.Select(listColumns).From("imports").OrderBy("id DESC")
	if filter.IndicatorID != nil {
		q = q.Where(sq.Eq{"indicator_id": *filter.IndicatorID})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}
	q = q.Limit(uint64(indicator.ClampLimit(filter.Limit))).Offset(uint64(max(filter.Offset, 0)))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list imports query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Import, 0)
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, fmt.Errorf("list imports: %w", err)
		}
		imp.Content = nil
		result = append(result, *imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores an uploaded file with status uploaded.
// Returns domain.ErrNotFound if the indicator does not exist.
func (r *Repo) Create(ctx context.Context, imp domain.Import) (*domain.Import, error) {
	created, err := scanImport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		imp.IndicatorID, imp.FileName, string(imp.Format), imp.Content, imp.UploadedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "import", imp.FileName)
	}
	return created, nil
}

// UpdateStatus writes a new status and report. processed_at is set only for
// the processed status. Transition validity is checked by the caller.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ImportStatus, report *domain.ValidationReport) (*domain.Import, error) {
	var reportJSON []byte
	if report != nil {
		var err error
		if reportJSON, err = json.Marshal(report); err != nil {
			return nil, fmt.Errorf("import %d marshal report: %w", id, err)
		}
	}

	updated, err := scanImport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateStatusSQL, id, string(status), reportJSON))
	if err != nil {
		return nil, postgres.MapError(err, "import", id)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanImport(row pgx.Row) (*domain.Import, error) {
	var (
		imp        domain.Import
		format     string
		status     string
		reportJSON []byte
	)
	err := row.Scan(
		&imp.ID, &imp.IndicatorID, &imp.FileName, &format, &imp.Content, &status, &reportJSON,
		&imp.UploadedBy, &imp.CreatedAt, &imp.UpdatedAt, &imp.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	imp.Format = domain.ImportFormat(format)
	imp.Status = domain.ImportStatus(status)

	if len(reportJSON) > 0 {
		var report domain.ValidationReport
		if err := json.Unmarshal(reportJSON, &report); err != nil {
			return nil, fmt.Errorf("import %d unmarshal report: %w", imp.ID, err)
		}
		imp.ValidationReport = &report
	}
	return &imp, nil
}
