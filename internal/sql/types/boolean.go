package types

func init() {
	Boolean = &booleanType{}
}

// booleanType implements the BOOLEAN data type, the planner's
// representation for boolean-valued predicates' Rhs.
type booleanType struct{}

func (t *booleanType) Name() string {
	return "BOOLEAN"
}

// NewBooleanValue creates a new BOOLEAN value.
func NewBooleanValue(b bool) Value {
	return NewValue(b)
}
