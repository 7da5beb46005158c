package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndianAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{75000, "75,000"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{150000000, "15,00,00,000"},
		{-80000, "-80,000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IndianAmount(tt.in), "%d", tt.in)
	}
}

func TestRate(t *testing.T) {
	require.Equal(t, "11", Rate(11.0))
	require.Equal(t, "10.5", Rate(10.5))
}
