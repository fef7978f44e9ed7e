package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigIntType(t *testing.T) {
	assert.Equal(t, "BIGINT", BigInt.Name())

	v := NewBigIntValue(1234567890123456)
	assert.False(t, v.IsNull())
	assert.Equal(t, int64(1234567890123456), v.Data)
	assert.Equal(t, "1234567890123456", v.String())
}

func TestTextType(t *testing.T) {
	assert.Equal(t, "TEXT", Text.Name())

	v := NewTextValue("a join-order decision worth remembering")
	assert.Equal(t, "a join-order decision worth remembering", v.Data)
	assert.Equal(t, "a join-order decision worth remembering", v.String())
}

func TestBooleanType(t *testing.T) {
	assert.Equal(t, "BOOLEAN", Boolean.Name())

	vTrue := NewBooleanValue(true)
	vFalse := NewBooleanValue(false)
	assert.Equal(t, true, vTrue.Data)
	assert.Equal(t, false, vFalse.Data)
}

func TestDoubleType(t *testing.T) {
	assert.Equal(t, "DOUBLE PRECISION", Double.Name())

	v := NewDoubleValue(3.5)
	assert.Equal(t, 3.5, v.Data)
	assert.Equal(t, "3.5", v.String())
}

func TestNullHandling(t *testing.T) {
	nullVal := NewNullValue()
	assert.True(t, nullVal.IsNull())
	assert.Equal(t, "NULL", nullVal.String())

	dataTypes := []DataType{BigInt, Boolean, Text, Double}
	for _, dt := range dataTypes {
		assert.NotEmpty(t, dt.Name())
	}
}
