package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// Hooks wraps the Keeper to receive pool events.
type Hooks struct {
	k Keeper
}

var _ types.AMMHooks = Hooks{}

// Hooks returns the wrapper struct for the pool module to call.
func (k Keeper) Hooks() Hooks {
	return Hooks{k}
}

// AfterPoolCreated starts tracking the pool's asset pair.
func (h Hooks) AfterPoolCreated(ctx context.Context, pair types.AssetPair) error {
	return h.k.OnCreatePool(ctx, pair)
}

// AfterTrade folds a trade into the current block's entry for the pair.
func (h Hooks) AfterTrade(ctx context.Context, pair types.AssetPair, entry types.PriceEntry) error {
	return h.k.OnTrade(ctx, pair, entry)
}

// AfterSwap converts an executed swap into a trade observation. Swaps that
// cannot be priced, or that carry zero amounts or zero liquidity, are ignored.
func (h Hooks) AfterSwap(ctx context.Context, transfer types.AMMTransfer, liquidity sdkmath.Int) error {
	price, amount, ok := transfer.NormalizePrice()
	if !ok {
		return nil
	}
	if price.IsZero() || amount.IsZero() || liquidity.IsNil() || liquidity.IsZero() {
		return nil
	}
	return h.k.OnTrade(ctx, transfer.Pair, types.NewPriceEntry(price, amount, liquidity))
}
