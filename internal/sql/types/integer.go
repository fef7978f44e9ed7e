package types

func init() {
	BigInt = &bigIntType{}
}

// bigIntType implements the BIGINT data type, the planner's one
// integer representation — values carry a single Int64 case, not a
// family of integer widths.
type bigIntType struct{}

func (t *bigIntType) Name() string {
	return "BIGINT"
}

// NewBigIntValue creates a new BIGINT value.
func NewBigIntValue(v int64) Value {
	return NewValue(v)
}
