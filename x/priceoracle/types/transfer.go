package types

import (
	sdkmath "cosmossdk.io/math"
)

// AMMTransfer describes an executed swap as reported by a pool.
type AMMTransfer struct {
	Pair      AssetPair   `json:"pair"`
	AmountIn  sdkmath.Int `json:"amount_in"`
	AmountOut sdkmath.Int `json:"amount_out"`
}

// NormalizePrice expresses the swap in the pair's canonical orientation.
// With a the lower asset id and b the higher one, it returns the price
// balance_a / balance_b and the traded amount balance_a. ok is false when
// the amounts cannot produce a price.
func (t AMMTransfer) NormalizePrice() (price sdkmath.LegacyDec, amount sdkmath.Int, ok bool) {
	if t.AmountIn.IsNil() || t.AmountOut.IsNil() {
		return sdkmath.LegacyDec{}, sdkmath.Int{}, false
	}

	balanceA, balanceB := t.AmountIn, t.AmountOut
	if t.Pair.Ordered().AssetIn != t.Pair.AssetIn {
		balanceA, balanceB = t.AmountOut, t.AmountIn
	}

	if !balanceB.IsPositive() || balanceA.IsNegative() {
		return sdkmath.LegacyDec{}, sdkmath.Int{}, false
	}
	if balanceA.GT(MaxBalance) || balanceB.GT(MaxBalance) {
		return sdkmath.LegacyDec{}, sdkmath.Int{}, false
	}

	price = sdkmath.LegacyNewDecFromInt(balanceA).Quo(sdkmath.LegacyNewDecFromInt(balanceB))
	return price, balanceA, true
}
