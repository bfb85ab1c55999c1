package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "12.00", FormatPrice(12))
	assert.Equal(t, "12.50", FormatPrice(12.5))
	assert.Equal(t, "1,234.57", FormatPrice(1234.567))
	assert.Equal(t, "0.00", FormatPrice(0))
}

func TestParseOptionalInt64(t *testing.T) {
	v, err := ParseOptionalInt64("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *v)

	_, err = ParseOptionalInt64("x")
	assert.Error(t, err)
}
