package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const organizationStatusActive = "active"

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationReader {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationReader = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT id, organization_name, currency_code, status, created_at
		FROM core_organizations
		WHERE id = $1;
	`
	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.ID,
		&m.OrganizationName,
		&m.CurrencyCode,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, queryError("failed to find organization "+organizationID, err)
	}

	org := mapping.ToDomainOrganization(m)
	return &org, nil
}

// ListOrganizationIDs returns every active organization, ordered by id.
func (r *PgxOrganizationRepository) ListOrganizationIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id FROM core_organizations WHERE lower(status) = $1 ORDER BY id`, organizationStatusActive)
	if err != nil {
		return nil, queryError("failed to list organizations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, queryError("failed to scan organization ids", err)
	}
	return ids, nil
}

// ListBranches returns the branch entities of an organization, ordered by name.
func (r *PgxOrganizationRepository) ListBranches(ctx context.Context, organizationID string) ([]domain.Branch, error) {
	entities, err := listEntities(ctx, r.Pool, organizationID, models.EntityTypeBranch, "entity_name, id")
	if err != nil {
		return nil, err
	}
	branches := make([]domain.Branch, 0, len(entities))
	for _, e := range entities {
		branches = append(branches, mapping.ToDomainBranch(e))
	}
	return branches, nil
}

// listEntities reads core_entities rows of one type. orderBy must be a constant column list.
func listEntities(ctx context.Context, pool *pgxpool.Pool, organizationID, entityType, orderBy string) ([]models.Entity, error) {
	query := `
		SELECT id, organization_id, entity_type, entity_name, entity_code, smart_code, status, metadata, created_at
		FROM core_entities
		WHERE organization_id = $1 AND entity_type = $2
		ORDER BY ` + orderBy

	rows, err := pool.Query(ctx, query, organizationID, entityType)
	if err != nil {
		return nil, queryError("failed to query "+entityType+" entities", err)
	}
	defer rows.Close()

	var entities []models.Entity
	for rows.Next() {
		var m models.Entity
		if err := rows.Scan(
			&m.ID,
			&m.OrganizationID,
			&m.EntityType,
			&m.EntityName,
			&m.EntityCode,
			&m.SmartCode,
			&m.Status,
			&m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, queryError("failed to scan "+entityType+" entity", err)
		}
		entities = append(entities, m)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("error iterating "+entityType+" entities", err)
	}
	return entities, nil
}
