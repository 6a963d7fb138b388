package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

func (k Keeper) setTenWindow(ctx context.Context, seq uint64, window types.TenWindow) error {
	bz, err := k.marshal(&window)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TenKey(seq), bz)
	return nil
}

// GetTenWindow returns the ten-block window of a pair.
func (k Keeper) GetTenWindow(ctx context.Context, pair types.AssetPair) (types.BucketQueue, bool, error) {
	store := k.getStore(ctx)
	seqBz := store.Get(types.TenIndexKey(pair.ID()))
	if seqBz == nil {
		return types.BucketQueue{}, false, nil
	}

	bz := store.Get(types.TenKey(sdk.BigEndianToUint64(seqBz)))
	if bz == nil {
		return types.BucketQueue{}, false, types.ErrCorruptedState.Wrapf("ten window of %s indexed but missing", pair)
	}

	var window types.TenWindow
	if err := k.unmarshal(bz, &window); err != nil {
		return types.BucketQueue{}, false, err
	}
	return window.Queue, true, nil
}

// IterateTenWindows walks the ten-block windows in registration order.
func (k Keeper) IterateTenWindows(ctx context.Context, cb func(seq uint64, window types.TenWindow) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.TenKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var window types.TenWindow
		if err := k.unmarshal(iterator.Value(), &window); err != nil {
			return err
		}
		seq := sdk.BigEndianToUint64(iterator.Key()[len(types.TenKeyPrefix):])
		if cb(seq, window) {
			break
		}
	}
	return nil
}

// GetAllTenWindows returns every ten-block window in registration order.
func (k Keeper) GetAllTenWindows(ctx context.Context) ([]types.TenWindow, error) {
	var windows []types.TenWindow
	err := k.IterateTenWindows(ctx, func(_ uint64, window types.TenWindow) bool {
		windows = append(windows, window)
		return false
	})
	return windows, err
}

// GetHundredWindow returns the hundred-block window of a pair. A pair has
// none until its first ten-block boundary.
func (k Keeper) GetHundredWindow(ctx context.Context, pair types.AssetPair) (types.BucketQueue, bool, error) {
	return k.getPairWindow(ctx, types.HundredKey(pair.ID()))
}

// SetHundredWindow stores the hundred-block window of a pair.
func (k Keeper) SetHundredWindow(ctx context.Context, pair types.AssetPair, queue types.BucketQueue) error {
	return k.setPairWindow(ctx, types.HundredKey(pair.ID()), pair, queue)
}

// GetThousandWindow returns the thousand-block window of a pair. A pair has
// none until its first hundred-block boundary.
func (k Keeper) GetThousandWindow(ctx context.Context, pair types.AssetPair) (types.BucketQueue, bool, error) {
	return k.getPairWindow(ctx, types.ThousandKey(pair.ID()))
}

// SetThousandWindow stores the thousand-block window of a pair.
func (k Keeper) SetThousandWindow(ctx context.Context, pair types.AssetPair, queue types.BucketQueue) error {
	return k.setPairWindow(ctx, types.ThousandKey(pair.ID()), pair, queue)
}

// IterateHundredWindows walks the hundred-block windows in pair id order.
func (k Keeper) IterateHundredWindows(ctx context.Context, cb func(window types.PairWindow) (stop bool)) error {
	return k.iteratePairWindows(ctx, types.HundredKeyPrefix, cb)
}

// IterateThousandWindows walks the thousand-block windows in pair id order.
func (k Keeper) IterateThousandWindows(ctx context.Context, cb func(window types.PairWindow) (stop bool)) error {
	return k.iteratePairWindows(ctx, types.ThousandKeyPrefix, cb)
}

// GetAllHundredWindows returns every hundred-block window.
func (k Keeper) GetAllHundredWindows(ctx context.Context) ([]types.PairWindow, error) {
	var windows []types.PairWindow
	err := k.IterateHundredWindows(ctx, func(window types.PairWindow) bool {
		windows = append(windows, window)
		return false
	})
	return windows, err
}

// GetAllThousandWindows returns every thousand-block window.
func (k Keeper) GetAllThousandWindows(ctx context.Context) ([]types.PairWindow, error) {
	var windows []types.PairWindow
	err := k.IterateThousandWindows(ctx, func(window types.PairWindow) bool {
		windows = append(windows, window)
		return false
	})
	return windows, err
}

// GetWindow returns the window of a pair at the given tier.
func (k Keeper) GetWindow(ctx context.Context, pair types.AssetPair, tier types.Tier) (types.BucketQueue, bool, error) {
	switch tier {
	case types.TierTen:
		return k.GetTenWindow(ctx, pair)
	case types.TierHundred:
		return k.GetHundredWindow(ctx, pair)
	case types.TierThousand:
		return k.GetThousandWindow(ctx, pair)
	default:
		return types.BucketQueue{}, false, tier.Validate()
	}
}

func (k Keeper) getPairWindow(ctx context.Context, key []byte) (types.BucketQueue, bool, error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return types.BucketQueue{}, false, nil
	}

	var window types.PairWindow
	if err := k.unmarshal(bz, &window); err != nil {
		return types.BucketQueue{}, false, err
	}
	return window.Queue, true, nil
}

func (k Keeper) setPairWindow(ctx context.Context, key []byte, pair types.AssetPair, queue types.BucketQueue) error {
	window := types.PairWindow{Pair: pair.Ordered(), Queue: queue}
	bz, err := k.marshal(&window)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

func (k Keeper) iteratePairWindows(ctx context.Context, prefix []byte, cb func(window types.PairWindow) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var window types.PairWindow
		if err := k.unmarshal(iterator.Value(), &window); err != nil {
			return err
		}
		if cb(window) {
			break
		}
	}
	return nil
}
