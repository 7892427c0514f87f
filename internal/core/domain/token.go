package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenID is the numeric identifier of a token on the MobileCoin ledger.
type TokenID uint64

func (t TokenID) String() string {
	return fmt.Sprintf("%d", uint64(t))
}

// Amount couples a raw (unscaled) value with the token it is denominated in.
type Amount struct {
	Value uint64
	Token TokenID
}

// NewAmount returns an Amount of the given raw value and token.
func NewAmount(value uint64, token TokenID) Amount {
	return Amount{Value: value, Token: token}
}

// TokenInfo describes a token known to the client: its display symbol, the
// number of decimal places of its smallest representable unit, and the
// network fee (in raw units) charged for transactions paying fees in it.
type TokenInfo struct {
	ID       TokenID
	Symbol   string
	Decimals int32
	Fee      uint64
}

// ParseValue converts a user-supplied decimal string, expressed in display
// units, to the token's raw integer representation.
func (i TokenInfo) ParseValue(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, err)
	}
	scaled := d.Shift(i.Decimals)
	if !scaled.IsInteger() {
		return 0, ErrAmountTooPrecise
	}
	bi := scaled.BigInt()
	if bi.Sign() < 0 || !bi.IsUint64() {
		return 0, ErrAmountOutOfRange
	}
	return bi.Uint64(), nil
}

// FormatValue renders a raw value in display units.
func (i TokenInfo) FormatValue(value uint64) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(value), -i.Decimals)
	return d.String()
}

// TokenRegistry is the immutable table of tokens the session can handle.
type TokenRegistry struct {
	infos []TokenInfo
}

// NewTokenRegistry returns a registry over the given token table.
func NewTokenRegistry(infos []TokenInfo) TokenRegistry {
	list := make([]TokenInfo, len(infos))
	copy(list, infos)
	return TokenRegistry{infos: list}
}

// Get returns the info for the given token id, if known.
func (r TokenRegistry) Get(id TokenID) (TokenInfo, bool) {
	for _, info := range r.infos {
		if info.ID == id {
			return info, true
		}
	}
	return TokenInfo{}, false
}

// List returns a copy of the token table.
func (r TokenRegistry) List() []TokenInfo {
	list := make([]TokenInfo, len(r.infos))
	copy(list, r.infos)
	return list
}

// DefaultTokens returns the token table of the MobileCoin main network.
func DefaultTokens() []TokenInfo {
	return []TokenInfo{
		{ID: 0, Symbol: "MOB", Decimals: 12, Fee: 400000000},
		{ID: 1, Symbol: "eUSD", Decimals: 6, Fee: 2560},
		{ID: 8192, Symbol: "FauxUSD", Decimals: 6, Fee: 2560},
	}
}
