package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$5.00", FormatUSD(500))
	assert.Equal(t, "$47,500.00", FormatUSD(47_500_00))
	assert.Equal(t, "$2,000,000.00", FormatUSD(2_000_000_00))
	assert.Equal(t, "-$1,250.75", FormatUSD(-1_250_75))
}

func TestParseToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"150", 150_00},
		{"150.5", 150_50},
		{"150.50", 150_50},
		{"150.509", 150_50},
		{"$47,500.00", 47_500_00},
		{" 285000 ", 285_000_00},
	}
	for _, tt := range tests {
		got, err := ParseToCents(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseToCents("1.2.3")
	assert.Error(t, err)
	_, err = ParseToCents("abc")
	assert.Error(t, err)
}
