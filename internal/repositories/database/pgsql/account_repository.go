package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.GLAccountReader {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GLAccountReader = (*PgxAccountRepository)(nil)

// ListActiveGLAccounts returns account entities whose metadata marks them as active GL accounts.
// The metadata check happens after mapping because is_active is stored both as bool and as text.
func (r *PgxAccountRepository) ListActiveGLAccounts(ctx context.Context, organizationID string) ([]domain.GLAccount, error) {
	entities, err := listEntities(ctx, r.Pool, organizationID, models.EntityTypeAccount, "entity_code NULLS LAST, entity_name")
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.GLAccount, 0, len(entities))
	for _, e := range entities {
		acc, err := mapping.ToDomainGLAccount(e)
		if err != nil {
			return nil, err
		}
		if acc.IsActive && strings.EqualFold(acc.LedgerType, domain.LedgerTypeGL) {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}
