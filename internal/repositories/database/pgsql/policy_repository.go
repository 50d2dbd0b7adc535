package pgsql

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Policy rows hang off the organization itself: entity_id is the organization id.
type PgxPolicyRepository struct {
	BaseRepository
}

func newPgxPolicyRepository(pool *pgxpool.Pool) portsrepo.PolicyRepositoryFacade {
	return &PgxPolicyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PolicyRepositoryFacade = (*PgxPolicyRepository)(nil)

// FindPolicyFields returns every row tagged with the policy smart code, serialized or legacy.
func (r *PgxPolicyRepository) FindPolicyFields(ctx context.Context, organizationID string) ([]domain.DynamicField, error) {
	rows, err := listDynamicData(ctx, r.Pool, `
		WHERE organization_id = $1 AND smart_code = $2`,
		organizationID, domain.SmartCodeSalesPostingPolicy)
	if err != nil {
		return nil, err
	}

	fields := make([]domain.DynamicField, 0, len(rows))
	for _, m := range rows {
		fields = append(fields, mapping.ToDomainDynamicField(m))
	}
	return fields, nil
}

// ReplacePolicy deletes the organization's policy rows, legacy ones included, and inserts the
// serialized policy in the same transaction.
func (r *PgxPolicyRepository) ReplacePolicy(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error {
	field, err := mapping.PolicyToField(policy)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM core_dynamic_data WHERE organization_id = $1 AND smart_code = $2`,
		organizationID, domain.SmartCodeSalesPostingPolicy,
	); err != nil {
		return queryError("failed to delete sales posting policy", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO core_dynamic_data (id, organization_id, entity_id, smart_code, field_name, field_value_json)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		uuid.NewString(),
		organizationID,
		organizationID,
		domain.SmartCodeSalesPostingPolicy,
		field.FieldName,
		field.JSON,
	); err != nil {
		return queryError("failed to insert sales posting policy", err)
	}

	return r.Commit(ctx, tx)
}
