package staking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/star-totals/internal/models"
)

func TestSuggestStakeQuarterKelly(t *testing.T) {
	sizer := NewSizer(0.25, 0.10)

	// p=0.6 at evens: full Kelly = (1*0.6 - 0.4)/1 = 0.2, quarter = 0.05.
	stake, err := sizer.SuggestStake(60, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, stake.Equal(decimal.NewFromInt(50)), "stake = %s, want 50", stake)
}

func TestSuggestStakeCappedByMaxFraction(t *testing.T) {
	sizer := NewSizer(1.0, 0.05)

	// Full Kelly of 0.2 must be capped at 5% of bankroll.
	stake, err := sizer.SuggestStake(60, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, stake.Equal(decimal.NewFromInt(50)), "stake = %s, want 50", stake)
}

func TestSuggestStakeNoEdge(t *testing.T) {
	sizer := NewSizer(0.25, 0.05)

	// p=0.4 at evens is a losing bet: no stake.
	stake, err := sizer.SuggestStake(40, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, stake.IsZero())

	// p=0.5 at evens is exactly break-even: still no stake.
	stake, err = sizer.SuggestStake(50, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, stake.IsZero())
}

func TestSuggestStakeValidation(t *testing.T) {
	sizer := NewSizer(0.25, 0.05)

	cases := []struct {
		name     string
		prob     float64
		odds     decimal.Decimal
		bankroll decimal.Decimal
		field    string
	}{
		{"probability above 100", 120, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000), "fused_probability"},
		{"negative probability", -1, decimal.NewFromFloat(2.0), decimal.NewFromInt(1000), "fused_probability"},
		{"odds at 1", 60, decimal.NewFromInt(1), decimal.NewFromInt(1000), "odds"},
		{"zero bankroll", 60, decimal.NewFromFloat(2.0), decimal.Zero, "bankroll"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sizer.SuggestStake(tc.prob, tc.odds, tc.bankroll)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidInput))

			var invalid *models.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}
