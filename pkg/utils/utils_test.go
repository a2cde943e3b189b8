package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenHashID(t *testing.T) {
	a := GenHashID("salt", 42)
	assert.Len(t, a, 12)
	assert.Equal(t, a, GenHashID("salt", 42))
	assert.NotEqual(t, a, GenHashID("salt", 43))
	assert.NotEqual(t, a, GenHashID("pepper", 42))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "São", Truncate("São Paulo", 3))
}

func TestAsciiUpper(t *testing.T) {
	assert.Equal(t, "SO PAULO", AsciiUpper("São Paulo"))
}
