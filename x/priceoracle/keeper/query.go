package keeper

import (
	"context"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// SpotSnapshot returns the newest finalized ten-block snapshot of a pair.
// found is false for pairs that are not tracked.
func (k Keeper) SpotSnapshot(ctx context.Context, pair types.AssetPair) (types.PriceInfo, bool, error) {
	queue, found, err := k.GetTenWindow(ctx, pair)
	if err != nil || !found {
		return types.PriceInfo{}, false, err
	}
	return queue.Last(), true, nil
}

// TrackedPairCount returns the number of tracked asset pairs.
func (k Keeper) TrackedPairCount(ctx context.Context) uint32 {
	return k.GetNumOfTrackedAssets(ctx)
}

// TierSnapshot returns a copy of the pair's window at the given tier.
// found is false for untracked pairs and for tiers the pair has not reached yet.
func (k Keeper) TierSnapshot(ctx context.Context, pair types.AssetPair, tier types.Tier) (types.BucketQueue, bool, error) {
	if err := tier.Validate(); err != nil {
		return types.BucketQueue{}, false, err
	}
	return k.GetWindow(ctx, pair, tier)
}

// GetOraclePrice returns the average of the pair's window at the given
// tier: the last 10, 100 or 1000 blocks.
func (k Keeper) GetOraclePrice(ctx context.Context, pair types.AssetPair, tier types.Tier) (types.PriceInfo, bool, error) {
	queue, found, err := k.TierSnapshot(ctx, pair, tier)
	if err != nil || !found {
		return types.PriceInfo{}, false, err
	}
	return queue.Average(), true, nil
}
