package odds

import (
	"math"
	"math/rand"
	"parimutuel-engine/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDistributable(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		feeBps int
		want   int64
	}{
		{"five percent", 400, 500, 380},
		{"truncates toward zero", 333, 200, 326},
		{"no fee", 1234, 0, 1234},
		{"empty pot", 0, 200, 0},
		{"one unit under fee", 1, 200, 0},
		{"large pot", 9_000_000_000_000_000, 250, 8_775_000_000_000_000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Distributable(tc.total, tc.feeBps))
		})
	}
}

func TestPayout(t *testing.T) {
	assert.Equal(t, int64(380), Payout(100, 380, 100))
	assert.Equal(t, int64(126), Payout(100, 380, 300))
	assert.Equal(t, int64(0), Payout(100, 380, 0), "empty winning pool pays nothing")
	assert.Equal(t, int64(0), Payout(0, 380, 100))
	assert.Equal(t, int64(0), Payout(100, 0, 100))

	// amount*distributable overflows int64 but the quotient does not
	big := int64(4_000_000_000_000_000_000)
	assert.Equal(t, big/2, Payout(big/2, big, big))
}

func TestValidateFee(t *testing.T) {
	assert.NoError(t, ValidateFee(0))
	assert.NoError(t, ValidateFee(200))
	assert.NoError(t, ValidateFee(9999))
	assert.ErrorIs(t, ValidateFee(-1), model.ErrInvalidFee)
	assert.ErrorIs(t, ValidateFee(10000), model.ErrInvalidFee)
}

func TestSettle_EndToEndExample(t *testing.T) {
	s := Settle(Pools{Yes: 100, No: 300}, 500, model.SideYes)

	assert.Equal(t, int64(400), s.TotalPot)
	assert.Equal(t, int64(20), s.Fee)
	assert.Equal(t, int64(380), s.Distributable)
	assert.Equal(t, int64(100), s.WinningPool)
	assert.Equal(t, int64(380), s.PayoutFor(model.SideYes, 100))
	assert.Equal(t, int64(0), s.PayoutFor(model.SideNo, 300))
	assert.Equal(t, int64(0), s.Residue(380))
}

func TestSettle_NobodyOnWinningSide(t *testing.T) {
	s := Settle(Pools{Yes: 0, No: 250}, 200, model.SideYes)

	assert.Equal(t, int64(0), s.WinningPool)
	assert.Equal(t, int64(0), s.PayoutFor(model.SideYes, 10))
	assert.Equal(t, s.Distributable, s.Residue(0), "whole pot retained")
}

func TestSettle_ResidueFromFlooring(t *testing.T) {
	s := Settle(Pools{Yes: 3, No: 7}, 0, model.SideYes)
	paid := s.PayoutFor(model.SideYes, 1) * 3

	assert.Equal(t, int64(9), paid)
	assert.Equal(t, int64(1), s.Residue(paid))
}

func TestImpliedProbability(t *testing.T) {
	assert.True(t, d("0.5").Equal(ImpliedProbability(Pools{}, model.SideYes)), "empty pot shows even odds")
	assert.True(t, d("0.25").Equal(ImpliedProbability(Pools{Yes: 100, No: 300}, model.SideYes)))
	assert.True(t, d("0.75").Equal(ImpliedProbability(Pools{Yes: 100, No: 300}, model.SideNo)))
	assert.True(t, d("0.3333").Equal(ImpliedProbability(Pools{Yes: 1, No: 2}, model.SideYes)))
}

func TestMultiplier(t *testing.T) {
	assert.True(t, d("3.8").Equal(Multiplier(Pools{Yes: 100, No: 300}, 500, model.SideYes)))
	assert.True(t, decimal.Zero.Equal(Multiplier(Pools{Yes: 0, No: 300}, 500, model.SideYes)))
	assert.True(t, decimal.Zero.Equal(Multiplier(Pools{}, 500, model.SideNo)))
}

func TestNewQuote(t *testing.T) {
	q, err := NewQuote(Pools{Yes: 100, No: 300}, 500, model.SideYes, 100)
	require.NoError(t, err)

	assert.True(t, d("0.25").Equal(q.YesProbability), "display probability excludes the hypothetical stake")
	assert.True(t, d("0.75").Equal(q.NoProbability))
	assert.True(t, d("3.8").Equal(q.CurrentMultiplier))
	assert.Equal(t, int64(237), q.PotentialPayout)
	assert.True(t, d("2.37").Equal(q.PotentialMultiplier))
	assert.True(t, d("0.4").Equal(q.ProbabilityAfterStake))
}

func TestNewQuote_ZeroAmount(t *testing.T) {
	q, err := NewQuote(Pools{Yes: 100, No: 300}, 500, model.SideNo, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), q.PotentialPayout)
	assert.True(t, decimal.Zero.Equal(q.PotentialMultiplier))
	assert.True(t, q.NoProbability.Equal(q.ProbabilityAfterStake))
}

func TestNewQuote_EmptyMarket(t *testing.T) {
	q, err := NewQuote(Pools{}, 200, model.SideYes, 50)
	require.NoError(t, err)

	assert.True(t, d("0.5").Equal(q.YesProbability))
	assert.Equal(t, int64(49), q.PotentialPayout, "sole staker gets the pot less the fee")
	assert.True(t, d("1").Equal(q.ProbabilityAfterStake))
}

func TestNewQuote_AmountOverflowsPot(t *testing.T) {
	tests := []struct {
		name   string
		pools  Pools
		amount int64
	}{
		{"max amount", Pools{Yes: 10, No: 10}, math.MaxInt64},
		{"just past the limit", Pools{Yes: 1, No: 0}, math.MaxInt64},
		{"negative", Pools{Yes: 10, No: 10}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuote(tt.pools, 200, model.SideYes, tt.amount)
			assert.ErrorIs(t, err, model.ErrInvalidAmount)
		})
	}

	_, err := NewQuote(Pools{Yes: 10, No: 10}, 200, model.SideYes, math.MaxInt64-20)
	assert.NoError(t, err, "a pot of exactly MaxInt64 still fits")
}

// A quote for a stake must promise exactly what settlement pays that stake if
// the market closed right after it.
func TestQuoteMatchesSettlement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		pools := Pools{Yes: rng.Int63n(1_000_000), No: rng.Int63n(1_000_000)}
		feeBps := rng.Intn(BpsDenominator)
		side := model.SideYes
		if rng.Intn(2) == 1 {
			side = model.SideNo
		}
		amount := rng.Int63n(100_000) + 1

		quote, err := NewQuote(pools, feeBps, side, amount)
		require.NoError(t, err)
		settled := Settle(pools.With(side, amount), feeBps, side).PayoutFor(side, amount)

		require.Equal(t, settled, quote.PotentialPayout, "pools=%+v fee=%d side=%s amount=%d", pools, feeBps, side, amount)
	}
}

// Payouts never exceed the distributable pot and the flooring residue is
// smaller than the number of winners.
func TestPayoutConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(40) + 1
		stakes := make([]struct {
			side   model.Side
			amount int64
		}, n)

		var pools Pools
		for j := range stakes {
			stakes[j].side = model.SideYes
			if rng.Intn(2) == 1 {
				stakes[j].side = model.SideNo
			}
			stakes[j].amount = rng.Int63n(10_000) + 1
			pools = pools.With(stakes[j].side, stakes[j].amount)
		}

		feeBps := rng.Intn(1000)
		outcome := model.SideYes
		if rng.Intn(2) == 1 {
			outcome = model.SideNo
		}
		s := Settle(pools, feeBps, outcome)

		var paid int64
		winners := 0
		for _, st := range stakes {
			p := s.PayoutFor(st.side, st.amount)
			if st.side == outcome {
				winners++
			} else {
				require.Zero(t, p)
			}
			paid += p
		}

		require.LessOrEqual(t, paid, s.Distributable)
		if winners > 0 {
			require.Less(t, s.Residue(paid), int64(winners))
		} else {
			require.Equal(t, s.Distributable, s.Residue(paid))
		}
		require.Equal(t, s.TotalPot, s.Fee+s.Distributable)
	}
}
