// Package odds holds the parimutuel arithmetic shared by quoting and settlement.
//
// Money is integer minor units. The fee is taken once off the whole pot, and
// every winner receives floor(amount * distributable / winningPool). The
// remainder left by flooring is never distributed; it is forfeited to the
// platform and reported as residue.
package odds

import (
	"fmt"
	"math"
	"parimutuel-engine/internal/model"

	"github.com/shopspring/decimal"
)

const (
	// BpsDenominator is the number of basis points in 100%.
	BpsDenominator = 10000

	displayPlaces = 4
)

var half = decimal.New(5, -1)

// Pools is a snapshot of both sides of a market.
type Pools struct {
	Yes int64
	No  int64
}

// PoolsOf snapshots the pools of a market.
func PoolsOf(m *model.Market) Pools {
	return Pools{Yes: m.YesPool, No: m.NoPool}
}

func (p Pools) Side(side model.Side) int64 {
	if side == model.SideYes {
		return p.Yes
	}
	return p.No
}

func (p Pools) Total() int64 {
	return p.Yes + p.No
}

// Fits reports whether amount can join the pot without overflowing int64.
func (p Pools) Fits(amount int64) bool {
	return amount >= 0 && p.Total() <= math.MaxInt64-amount
}

// With returns the pools after adding amount to side.
func (p Pools) With(side model.Side, amount int64) Pools {
	if side == model.SideYes {
		p.Yes += amount
	} else {
		p.No += amount
	}
	return p
}

// ValidateFee checks that a fee is expressible in basis points.
func ValidateFee(feeBps int) error {
	if feeBps < 0 || feeBps >= BpsDenominator {
		return model.ErrInvalidFee
	}
	return nil
}

// Distributable returns totalPot*(10000-feeBps)/10000 truncated toward zero.
func Distributable(totalPot int64, feeBps int) int64 {
	if totalPot <= 0 {
		return 0
	}
	return mulDiv(totalPot, int64(BpsDenominator-feeBps), BpsDenominator)
}

// Payout returns floor(amount*distributable/winningPool). An empty winning
// pool pays nothing and the whole pot is retained.
func Payout(amount, distributable, winningPool int64) int64 {
	if winningPool <= 0 {
		return 0
	}
	if amount <= 0 || distributable <= 0 {
		return 0
	}
	return mulDiv(amount, distributable, winningPool)
}

// mulDiv computes floor(a*b/c) for non-negative operands without overflowing
// the intermediate product.
func mulDiv(a, b, c int64) int64 {
	q, _ := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b)).QuoRem(decimal.NewFromInt(c), 0)
	return q.IntPart()
}

// ImpliedProbability returns sidePool/totalPot for display. An empty pot is
// shown as even odds.
func ImpliedProbability(p Pools, side model.Side) decimal.Decimal {
	total := p.Total()
	if total <= 0 {
		return half
	}
	return decimal.NewFromInt(p.Side(side)).DivRound(decimal.NewFromInt(total), displayPlaces)
}

// Multiplier returns distributable/sidePool for the given pools: how much a
// unit staked on side returns if side wins. Zero when either pool is empty.
func Multiplier(p Pools, feeBps int, side model.Side) decimal.Decimal {
	sidePool := p.Side(side)
	if p.Total() <= 0 || sidePool <= 0 {
		return decimal.Zero
	}
	dist := Distributable(p.Total(), feeBps)
	return decimal.NewFromInt(dist).DivRound(decimal.NewFromInt(sidePool), displayPlaces)
}

// Settlement is the final arithmetic of a resolved market.
type Settlement struct {
	Outcome       model.Side
	Pools         Pools
	FeeBps        int
	TotalPot      int64
	Fee           int64
	Distributable int64
	WinningPool   int64
}

// Settle computes the settlement of final pools for an outcome.
func Settle(p Pools, feeBps int, outcome model.Side) Settlement {
	total := p.Total()
	dist := Distributable(total, feeBps)
	return Settlement{
		Outcome:       outcome,
		Pools:         p,
		FeeBps:        feeBps,
		TotalPot:      total,
		Fee:           total - dist,
		Distributable: dist,
		WinningPool:   p.Side(outcome),
	}
}

// PayoutFor returns the payout of a stake under this settlement. Losing
// stakes pay zero.
func (s Settlement) PayoutFor(side model.Side, amount int64) int64 {
	if side != s.Outcome {
		return 0
	}
	return Payout(amount, s.Distributable, s.WinningPool)
}

// Residue is the part of the distributable pot not paid out.
func (s Settlement) Residue(distributed int64) int64 {
	return s.Distributable - distributed
}

// Quote describes the odds of a market as shown before placing a stake.
//
// Probabilities and CurrentMultiplier use the current pools only. The
// Potential* fields include the hypothetical stake, exactly as settlement
// would if the market closed right after it.
type Quote struct {
	Side                  model.Side
	Amount                int64
	Pools                 Pools
	FeeBps                int
	YesProbability        decimal.Decimal
	NoProbability         decimal.Decimal
	CurrentMultiplier     decimal.Decimal
	PotentialPayout       int64
	PotentialMultiplier   decimal.Decimal
	ProbabilityAfterStake decimal.Decimal
}

// NewQuote quotes a hypothetical stake of amount on side. An amount that is
// negative or would overflow the pot is ErrInvalidAmount.
func NewQuote(p Pools, feeBps int, side model.Side, amount int64) (Quote, error) {
	if !p.Fits(amount) {
		return Quote{}, fmt.Errorf("%w: %d cannot join a pot of %d", model.ErrInvalidAmount, amount, p.Total())
	}

	q := Quote{
		Side:                side,
		Amount:              amount,
		Pools:               p,
		FeeBps:              feeBps,
		YesProbability:      ImpliedProbability(p, model.SideYes),
		NoProbability:       ImpliedProbability(p, model.SideNo),
		CurrentMultiplier:   Multiplier(p, feeBps, side),
		PotentialMultiplier: decimal.Zero,
	}
	if amount == 0 {
		q.ProbabilityAfterStake = q.probability(side)
		return q, nil
	}

	after := p.With(side, amount)
	q.PotentialPayout = Settle(after, feeBps, side).PayoutFor(side, amount)
	q.PotentialMultiplier = decimal.NewFromInt(q.PotentialPayout).DivRound(decimal.NewFromInt(amount), displayPlaces)
	q.ProbabilityAfterStake = ImpliedProbability(after, side)
	return q, nil
}

func (q Quote) probability(side model.Side) decimal.Decimal {
	if side == model.SideYes {
		return q.YesProbability
	}
	return q.NoProbability
}
