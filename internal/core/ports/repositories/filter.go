package repositories

// FilterOperator is a comparison understood by every repository implementation.
type FilterOperator string

const (
	OpEq  FilterOperator = "eq"
	OpGte FilterOperator = "gte"
	OpLt  FilterOperator = "lt"
	OpIn  FilterOperator = "in"
)

// Filter is a single predicate on a named field. Filters passed together are ANDed.
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    any
}

// Eq matches rows whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Operator: OpEq, Value: value}
}

// Gte matches rows whose field is greater than or equal to value.
func Gte(field string, value any) Filter {
	return Filter{Field: field, Operator: OpGte, Value: value}
}

// Lt matches rows whose field is strictly less than value.
func Lt(field string, value any) Filter {
	return Filter{Field: field, Operator: OpLt, Value: value}
}

// In matches rows whose field is one of values.
func In(field string, values []string) Filter {
	return Filter{Field: field, Operator: OpIn, Value: values}
}

// Field names accepted by transaction filters.
const (
	FieldOrganizationID  = "organization_id"
	FieldBranchID        = "branch_id"
	FieldStatus          = "status"
	FieldSmartCode       = "smart_code"
	FieldTransactionDate = "transaction_date"
	FieldTransactionType = "transaction_type"
)
