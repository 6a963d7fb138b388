package keeper

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// GetNumOfTrackedAssets returns the number of registered asset pairs.
func (k Keeper) GetNumOfTrackedAssets(ctx context.Context) uint32 {
	bz := k.getStore(ctx).Get(types.NumOfTrackedAssetsKey)
	if len(bz) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(bz)
}

func (k Keeper) setNumOfTrackedAssets(ctx context.Context, count uint32) {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, count)
	k.getStore(ctx).Set(types.NumOfTrackedAssetsKey, bz)
	k.metrics.TrackedPairs.Set(float64(count))
}

// IsTracked reports whether the pair has been registered.
func (k Keeper) IsTracked(ctx context.Context, pair types.AssetPair) bool {
	return k.getStore(ctx).Has(types.TenIndexKey(pair.ID()))
}

// RegisterAssetPair starts tracking a pair: an empty ten-block window is
// appended and the tracked asset counter incremented. It returns false if
// the pair was already tracked, or if the counter cannot be incremented.
func (k Keeper) RegisterAssetPair(ctx context.Context, pair types.AssetPair) (bool, error) {
	if err := pair.Validate(); err != nil {
		return false, err
	}
	if k.IsTracked(ctx, pair) {
		return false, nil
	}

	count := k.GetNumOfTrackedAssets(ctx)
	if count == math.MaxUint32 {
		k.Logger(ctx).Error("tracked asset counter saturated, pair not registered", "pair", pair.String())
		return false, nil
	}

	seq := uint64(count)
	if err := k.setTenWindow(ctx, seq, types.TenWindow{Pair: pair.Ordered(), Queue: types.NewBucketQueue()}); err != nil {
		return false, err
	}
	k.getStore(ctx).Set(types.TenIndexKey(pair.ID()), sdk.Uint64ToBigEndian(seq))
	k.setNumOfTrackedAssets(ctx, count+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairRegistered,
			sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
			sdk.NewAttribute(types.AttributeKeyTrackedAssets, fmt.Sprintf("%d", count+1)),
		),
	)
	k.Logger(ctx).Debug("registered asset pair", "pair", pair.String(), "tracked_assets", count+1)

	return true, nil
}

// OnCreatePool registers the pair of a newly created pool. Registering a
// tracked pair is a no-op, and an invalid pair is ignored.
func (k Keeper) OnCreatePool(ctx context.Context, pair types.AssetPair) error {
	sdk.UnwrapSDKContext(ctx).GasMeter().ConsumeGas(k.weights.OnPoolCreated(), "priceoracle/pool_created")

	_, err := k.RegisterAssetPair(ctx, pair)
	if errors.Is(err, types.ErrInvalidAssetPair) {
		k.Logger(ctx).Debug("ignoring pool with invalid asset pair", "pair", pair.String(), "error", err)
		return nil
	}
	return err
}
