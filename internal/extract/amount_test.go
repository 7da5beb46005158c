package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		message string
		want    int64
		ok      bool
	}{
		{"I need 50k", 50_000, true},
		{"2 lakh please", 200_000, true},
		{"around 1.5 million", 1_500_000, true},
		{"75000", 75_000, true},
		{"₹80,000 for a wedding", 80_000, true},
		{"rs. 1,20,000", 120_000, true},
		{"give me $500 thousand", 500_000, true},
		{"I need 80000 for 12 months for education", 80_000, true},
		{"12 months", 0, false},
		{"no numbers here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := Amount(tt.message)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTenure(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"for 12 months", 12, true},
		{"1 month", 1, true},
		{"24 mos", 24, true},
		{"6 mo", 6, true},
		{"I need 80000 for 12 months for education", 12, true},
		{"twelve months", 0, false},
		{"12", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := Tenure(tt.message)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
