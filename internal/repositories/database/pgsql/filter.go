package pgsql

import (
	"fmt"
	"strings"

	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
)

// transactionColumns maps filter fields onto universal_transactions columns.
var transactionColumns = map[string]string{
	portsrepo.FieldOrganizationID:  "organization_id",
	portsrepo.FieldBranchID:        "branch_id",
	portsrepo.FieldStatus:          "status",
	portsrepo.FieldSmartCode:       "smart_code",
	portsrepo.FieldTransactionDate: "transaction_date",
	portsrepo.FieldTransactionType: "transaction_type",
}

// buildWhere renders filters as an ANDed WHERE clause with placeholders numbered from firstArg.
// Fields missing from columns are rejected so callers can never inject identifiers.
func buildWhere(filters []portsrepo.Filter, columns map[string]string, firstArg int) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	n := firstArg

	for _, f := range filters {
		column, ok := columns[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter field %q", f.Field)
		}

		switch f.Operator {
		case portsrepo.OpEq:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", column, n))
		case portsrepo.OpGte:
			clauses = append(clauses, fmt.Sprintf("%s >= $%d", column, n))
		case portsrepo.OpLt:
			clauses = append(clauses, fmt.Sprintf("%s < $%d", column, n))
		case portsrepo.OpIn:
			if _, ok := f.Value.([]string); !ok {
				return "", nil, fmt.Errorf("filter %q: operator in expects a string list, got %T", f.Field, f.Value)
			}
			clauses = append(clauses, fmt.Sprintf("%s = ANY($%d)", column, n))
		default:
			return "", nil, fmt.Errorf("filter %q: unsupported operator %q", f.Field, f.Operator)
		}
		args = append(args, f.Value)
		n++
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
