package types

func init() {
	Double = &doubleType{}
}

// doubleType implements the DOUBLE PRECISION data type (64-bit IEEE
// 754), the planner's one floating-point representation — values carry
// a single Float64 case, not a family of float widths.
type doubleType struct{}

func (t *doubleType) Name() string {
	return "DOUBLE PRECISION"
}

// NewDoubleValue creates a new DOUBLE PRECISION value.
func NewDoubleValue(v float64) Value {
	return NewValue(v)
}
