package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Pair identifies a trading pair: the taker receives Base and pays Counter.
type Pair struct {
	Base    TokenID
	Counter TokenID
}

// Quote is a time-limited offer, sourced from the quote peer, to sell
// BaseVolume of the pair's base token against CounterVolume of its counter
// token. Immutable; it becomes invalid once Expiry passes or once the peer
// reports it consumed or cancelled.
type Quote struct {
	ID            string
	Pair          Pair
	BaseVolume    uint64
	CounterVolume uint64
	Expiry        time.Time
}

// IsExpired returns whether the quote is past its expiration at the given
// instant.
func (q Quote) IsExpired(now time.Time) bool {
	return !q.Expiry.After(now)
}

// Covers returns whether the quote's base volume satisfies the desired
// amount, possibly through a partial fill.
func (q Quote) Covers(desired uint64) bool {
	return q.BaseVolume >= desired
}

// Rate returns the counter cost per unit of base token. Lower is more
// favorable to the taker.
func (q Quote) Rate() decimal.Decimal {
	if q.BaseVolume == 0 {
		return decimal.Zero
	}
	counter := decimal.NewFromBigInt(new(big.Int).SetUint64(q.CounterVolume), 0)
	base := decimal.NewFromBigInt(new(big.Int).SetUint64(q.BaseVolume), 0)
	return counter.DivRound(base, 18)
}

// CostFor returns the counter amount owed for a fill of the desired base
// amount, rounded up against the taker.
func (q Quote) CostFor(desired uint64) uint64 {
	if q.BaseVolume == 0 {
		return 0
	}
	num := new(big.Int).Mul(
		new(big.Int).SetUint64(desired),
		new(big.Int).SetUint64(q.CounterVolume),
	)
	den := new(big.Int).SetUint64(q.BaseVolume)
	cost, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() > 0 {
		cost.Add(cost, big.NewInt(1))
	}
	return cost.Uint64()
}
