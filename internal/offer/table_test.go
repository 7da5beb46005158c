package offer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForTenureExactMatch(t *testing.T) {
	table := NewTable()
	require.Equal(t, 10.5, table.ForTenure(6).InterestRate)
	require.Equal(t, 11.0, table.ForTenure(12).InterestRate)
	require.Equal(t, 12.5, table.ForTenure(36).InterestRate)
}

func TestForTenureFallsBackToTwelveMonthRate(t *testing.T) {
	table := NewTable()
	for _, months := range []int{0, 5, 13, 48} {
		got := table.ForTenure(months)
		require.Equal(t, DefaultTenureMonths, got.TenureMonths)
		require.Equal(t, 11.0, got.InterestRate)
	}
}
