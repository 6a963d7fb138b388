package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

var (
	// MaxBalance is the largest representable volume (an unsigned 128-bit balance).
	MaxBalance = sdkmath.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

	// MaxPrice is the largest representable price: an 18-decimal fixed
	// point number whose raw value fits in 128 bits.
	MaxPrice = sdkmath.LegacyNewDecFromBigIntWithPrec(MaxBalance.BigInt(), sdkmath.LegacyPrecision)
)

// PriceEntry is a single trade observation, or the combination of every
// trade of a pair seen so far in the current block.
type PriceEntry struct {
	Price           sdkmath.LegacyDec `json:"price"`
	TradeAmount     sdkmath.Int       `json:"trade_amount"`
	LiquidityAmount sdkmath.Int       `json:"liquidity_amount"`
}

// NewPriceEntry creates a price entry
func NewPriceEntry(price sdkmath.LegacyDec, tradeAmount, liquidityAmount sdkmath.Int) PriceEntry {
	return PriceEntry{
		Price:           price,
		TradeAmount:     tradeAmount,
		LiquidityAmount: liquidityAmount,
	}
}

// ZeroPriceEntry is the starting point of a block's fold.
func ZeroPriceEntry() PriceEntry {
	return PriceEntry{
		Price:           sdkmath.LegacyZeroDec(),
		TradeAmount:     sdkmath.ZeroInt(),
		LiquidityAmount: sdkmath.ZeroInt(),
	}
}

func (e PriceEntry) isNil() bool {
	return e.Price.IsNil() || e.TradeAmount.IsNil() || e.LiquidityAmount.IsNil()
}

// Validate checks that the entry is a usable trade observation: a positive
// price, positive trade and liquidity volumes, all within representable bounds.
func (e PriceEntry) Validate() error {
	if e.isNil() {
		return ErrInvalidEntry.Wrap("price entry has unset fields")
	}
	if !e.Price.IsPositive() || e.Price.GT(MaxPrice) {
		return ErrInvalidEntry.Wrapf("price %s out of range", e.Price)
	}
	if !e.TradeAmount.IsPositive() || e.TradeAmount.GT(MaxBalance) {
		return ErrInvalidEntry.Wrapf("trade amount %s out of range", e.TradeAmount)
	}
	if !e.LiquidityAmount.IsPositive() || e.LiquidityAmount.GT(MaxBalance) {
		return ErrInvalidEntry.Wrapf("liquidity amount %s out of range", e.LiquidityAmount)
	}
	return nil
}

// IsValid reports whether Validate passes.
func (e PriceEntry) IsValid() bool {
	return e.Validate() == nil
}

// Combine folds incoming into e and returns the new block summary.
//
// The price is the trade-volume weighted mean of both prices, truncated to
// 18 decimals. Trade and liquidity volumes are summed. The second return
// value is false when any step overflows the representable range, in which
// case the caller keeps e unchanged.
func (e PriceEntry) Combine(incoming PriceEntry) (PriceEntry, bool) {
	if e.isNil() || incoming.isNil() {
		return PriceEntry{}, false
	}
	if e.Price.IsNegative() || incoming.Price.IsNegative() {
		return PriceEntry{}, false
	}

	tradeAmount, ok := addBalance(e.TradeAmount, incoming.TradeAmount)
	if !ok || tradeAmount.IsZero() {
		return PriceEntry{}, false
	}
	liquidityAmount, ok := addBalance(e.LiquidityAmount, incoming.LiquidityAmount)
	if !ok {
		return PriceEntry{}, false
	}

	prevWeighted, err := rawPrice(e.Price).SafeMul(e.TradeAmount)
	if err != nil {
		return PriceEntry{}, false
	}
	inWeighted, err := rawPrice(incoming.Price).SafeMul(incoming.TradeAmount)
	if err != nil {
		return PriceEntry{}, false
	}
	weighted, err := prevWeighted.SafeAdd(inWeighted)
	if err != nil {
		return PriceEntry{}, false
	}
	raw, err := weighted.SafeQuo(tradeAmount)
	if err != nil {
		return PriceEntry{}, false
	}

	price := sdkmath.LegacyNewDecFromBigIntWithPrec(raw.BigInt(), sdkmath.LegacyPrecision)
	if price.GT(MaxPrice) {
		return PriceEntry{}, false
	}

	return PriceEntry{
		Price:           price,
		TradeAmount:     tradeAmount,
		LiquidityAmount: liquidityAmount,
	}, true
}

// ToPriceInfo reduces the entry to the snapshot stored in windows.
func (e PriceEntry) ToPriceInfo() PriceInfo {
	return PriceInfo{
		AvgPrice: e.Price,
		Volume:   e.TradeAmount,
	}
}

// addBalance adds two volumes and reports false if the sum leaves [0, MaxBalance].
func addBalance(a, b sdkmath.Int) (sdkmath.Int, bool) {
	if a.IsNegative() || b.IsNegative() {
		return sdkmath.Int{}, false
	}
	sum, err := a.SafeAdd(b)
	if err != nil || sum.GT(MaxBalance) {
		return sdkmath.Int{}, false
	}
	return sum, true
}

// rawPrice returns the 18-decimal scaled integer behind a price.
func rawPrice(d sdkmath.LegacyDec) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(d.BigInt())
}
