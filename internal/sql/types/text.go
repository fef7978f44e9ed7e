package types

func init() {
	Text = &textType{}
}

// textType implements the TEXT data type, the planner's one string
// representation — values carry a single String case, not a family of
// fixed/variable-width character types.
type textType struct{}

func (t *textType) Name() string {
	return "TEXT"
}

// NewTextValue creates a new TEXT value.
func NewTextValue(s string) Value {
	return NewValue(s)
}
