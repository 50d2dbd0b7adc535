package memory

import (
	"fmt"
	"slices"
	"time"

	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
)

// fieldLookup returns the value of a named field of a stored row, and false for unknown fields.
type fieldLookup func(field string) (any, bool)

// matchAll applies the filters with AND semantics. Unknown fields and unsupported comparisons are errors,
// matching the column allow-list of the SQL store.
func matchAll(filters []portsrepo.Filter, lookup fieldLookup) (bool, error) {
	for _, f := range filters {
		actual, ok := lookup(f.Field)
		if !ok {
			return false, fmt.Errorf("unsupported filter field %q", f.Field)
		}
		matched, err := matchOne(f, actual)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

func matchOne(f portsrepo.Filter, actual any) (bool, error) {
	switch f.Operator {
	case portsrepo.OpEq:
		return actual == f.Value, nil
	case portsrepo.OpIn:
		values, ok := f.Value.([]string)
		if !ok {
			return false, fmt.Errorf("filter %q: 'in' expects []string, got %T", f.Field, f.Value)
		}
		s, ok := actual.(string)
		return ok && slices.Contains(values, s), nil
	case portsrepo.OpGte, portsrepo.OpLt:
		at, ok := actual.(time.Time)
		bound, okBound := f.Value.(time.Time)
		if !ok || !okBound {
			return false, fmt.Errorf("filter %q: %s supports only timestamps", f.Field, f.Operator)
		}
		if f.Operator == portsrepo.OpGte {
			return !at.Before(bound), nil
		}
		return at.Before(bound), nil
	default:
		return false, fmt.Errorf("unsupported filter operator %q", f.Operator)
	}
}
