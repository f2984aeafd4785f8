package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	intPtr := Ptr(42)
	strPtr := Ptr("ar")
	floatPtr := Ptr(0.7)

	assert.Equal(t, 42, *intPtr)
	assert.Equal(t, "ar", *strPtr)
	assert.Equal(t, 0.7, *floatPtr)

	v := 1
	p := Ptr(v)
	*p = 2
	assert.Equal(t, 1, v, "Ptr must point to a copy")
}
