package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// GetAccumulatedEntry returns the combined entry of the pair's trades in
// the current block.
func (k Keeper) GetAccumulatedEntry(ctx context.Context, pair types.AssetPair) (types.PriceEntry, bool, error) {
	bz := k.getStore(ctx).Get(types.AccumulatorKey(pair.ID()))
	if bz == nil {
		return types.PriceEntry{}, false, nil
	}

	var entry types.PriceEntry
	if err := k.unmarshal(bz, &entry); err != nil {
		return types.PriceEntry{}, false, err
	}
	return entry, true, nil
}

// SetAccumulatedEntry stores the combined entry of the pair for the current block.
func (k Keeper) SetAccumulatedEntry(ctx context.Context, pair types.AssetPair, entry types.PriceEntry) error {
	bz, err := k.marshal(&entry)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.AccumulatorKey(pair.ID()), bz)
	return nil
}

// IterateAccumulator walks the accumulated entries of the current block.
func (k Keeper) IterateAccumulator(ctx context.Context, cb func(pair types.AssetPair, entry types.PriceEntry) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AccumulatorKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		pair, err := types.AssetPairFromID(iterator.Key()[len(types.AccumulatorKeyPrefix):])
		if err != nil {
			return types.ErrCorruptedState.Wrapf("accumulator key: %v", err)
		}
		var entry types.PriceEntry
		if err := k.unmarshal(iterator.Value(), &entry); err != nil {
			return err
		}
		if cb(pair, entry) {
			break
		}
	}
	return nil
}

// ClearAccumulator removes every accumulated entry.
func (k Keeper) ClearAccumulator(ctx context.Context) int {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AccumulatorKeyPrefix)

	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, append([]byte{}, iterator.Key()...))
	}
	iterator.Close()

	for _, key := range keys {
		store.Delete(key)
	}
	return len(keys)
}

// OnTrade folds a trade observation into the pair's entry for the current
// block. Invalid observations are ignored. A trade whose combination
// overflows is dropped and the previous entry kept. Only store failures
// are returned.
func (k Keeper) OnTrade(ctx context.Context, pair types.AssetPair, entry types.PriceEntry) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.GasMeter().ConsumeGas(k.weights.OnTrade(), "priceoracle/trade")

	// zero prices and volumes are not valid observations
	if err := entry.Validate(); err != nil {
		k.metrics.TradesTotal.WithLabelValues(tradeStatusRejected).Inc()
		return nil
	}

	previous, found, err := k.GetAccumulatedEntry(ctx, pair)
	if err != nil {
		return err
	}
	if !found {
		previous = types.ZeroPriceEntry()
	}

	combined, ok := previous.Combine(entry)
	if !ok {
		k.metrics.TradesTotal.WithLabelValues(tradeStatusDropped).Inc()
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTradeDropped,
				sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
				sdk.NewAttribute(types.AttributeKeyReason, types.DropReasonOverflow),
			),
		)
		k.Logger(ctx).Debug("dropping trade that overflows block accumulator",
			"pair", pair.String(),
			"trade_amount", entry.TradeAmount.String(),
			"accumulated_amount", previous.TradeAmount.String(),
		)
		return nil
	}

	if err := k.SetAccumulatedEntry(ctx, pair, combined); err != nil {
		return err
	}
	k.metrics.TradesTotal.WithLabelValues(tradeStatusAccepted).Inc()
	return nil
}
