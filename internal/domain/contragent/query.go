package contragent

// ConditionOp is the comparison applied by a query condition.
type ConditionOp string

const (
	OpEqual  ConditionOp = "eq"
	OpIsNull ConditionOp = "is_null"
)

// Condition is one predicate of a registry query. Repositories translate
// conditions into SQL; building them stays a pure function so the
// present-field-to-predicate mapping is testable without a datastore.
type Condition struct {
	Column string
	Op     ConditionOp
	Value  string
}

// eq builds an equality condition.
func eq(column, value string) Condition {
	return Condition{Column: column, Op: OpEqual, Value: value}
}

// isNull builds an IS NULL condition.
func isNull(column string) Condition {
	return Condition{Column: column, Op: OpIsNull}
}

// eqOrNull matches the normalized value when present and requires the
// stored column to be NULL when absent. This is the dedup key semantics:
// a blank optional field collides only with other blank entries.
func eqOrNull(column, value string) Condition {
	if value == "" {
		return isNull(column)
	}
	return eq(column, value)
}
