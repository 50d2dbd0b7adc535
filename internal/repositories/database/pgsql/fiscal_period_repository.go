package pgsql

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) portsrepo.FiscalPeriodReader {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodReader = (*PgxFiscalPeriodRepository)(nil)

// ListFiscalPeriods joins fiscal_period entities with their start_date, end_date and status fields.
func (r *PgxFiscalPeriodRepository) ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error) {
	entities, err := listEntities(ctx, r.Pool, organizationID, models.EntityTypeFiscalPeriod, "entity_name, id")
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}

	fields, err := listDynamicData(ctx, r.Pool, `
		WHERE organization_id = $1 AND entity_id = ANY($2) AND field_name = ANY($3)`,
		organizationID, ids,
		[]string{mapping.FiscalFieldStartDate, mapping.FiscalFieldEndDate, mapping.FiscalFieldStatus})
	if err != nil {
		return nil, err
	}

	byEntity := make(map[string][]domain.DynamicField, len(entities))
	for _, f := range fields {
		byEntity[f.EntityID] = append(byEntity[f.EntityID], mapping.ToDomainDynamicField(f))
	}

	periods := make([]domain.FiscalPeriod, 0, len(entities))
	for _, e := range entities {
		periods = append(periods, mapping.ToDomainFiscalPeriod(e, byEntity[e.ID]))
	}
	return periods, nil
}

// listDynamicData reads core_dynamic_data rows; where must only use placeholders for values.
func listDynamicData(ctx context.Context, pool *pgxpool.Pool, where string, args ...any) ([]models.DynamicData, error) {
	query := `
		SELECT id, organization_id, entity_id, smart_code, field_name,
		       field_value_text, field_value_number, field_value_boolean, field_value_json, created_at
		FROM core_dynamic_data` + where + `
		ORDER BY created_at, id`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, queryError("failed to query dynamic data", err)
	}
	defer rows.Close()

	var out []models.DynamicData
	for rows.Next() {
		var m models.DynamicData
		if err := rows.Scan(
			&m.ID,
			&m.OrganizationID,
			&m.EntityID,
			&m.SmartCode,
			&m.FieldName,
			&m.FieldValueText,
			&m.FieldValueNumber,
			&m.FieldValueBoolean,
			&m.FieldValueJSON,
			&m.CreatedAt,
		); err != nil {
			return nil, queryError("failed to scan dynamic data", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("error iterating dynamic data", err)
	}
	return out, nil
}
