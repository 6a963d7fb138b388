package keeper

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

const (
	hundredBoundary  = types.BucketSize - 1
	thousandBoundary = types.BucketSize*types.BucketSize - 1
)

// IsHundredBoundary reports whether the ten-block windows roll into the
// hundred-block windows at this block.
func IsHundredBoundary(blockNumber uint64) bool {
	return blockNumber%types.BucketSize == hundredBoundary
}

// IsThousandBoundary reports whether the hundred-block windows roll into
// the thousand-block windows at this block.
func IsThousandBoundary(blockNumber uint64) bool {
	return blockNumber%(types.BucketSize*types.BucketSize) == thousandBoundary
}

// AdvanceBlock runs the per-block rollup for blockNumber. It must be called
// once per block, in increasing order, after every trade of the previous
// block has been reported.
//
//  1. every tracked pair pushes its accumulated entry, or its last snapshot
//     when it had no trade, into its ten-block window
//  2. the accumulator is cleared
//  3. block zero stops here
//  4. on block numbers ending in W-1 the ten-block averages are pushed into
//     the hundred-block windows
//  5. on block numbers ending in W²-1 the hundred-block averages are pushed
//     into the thousand-block windows
//
// The returned weight is the cost of the rollup for the host.
func (k Keeper) AdvanceBlock(ctx context.Context, blockNumber uint64) (types.Weight, error) {
	numPairs := k.GetNumOfTrackedAssets(ctx)
	weight := k.weights.OnInitialize(numPairs)

	updateErr := k.rollTen(ctx)
	cleared := k.ClearAccumulator(ctx)
	if updateErr != nil {
		return weight, updateErr
	}

	k.Logger(ctx).Debug("rolled ten-block windows",
		"height", blockNumber,
		"pairs", numPairs,
		"traded_pairs", cleared,
	)

	if blockNumber == 0 {
		return weight, nil
	}

	if IsHundredBoundary(blockNumber) {
		n, err := k.rollHundred(ctx)
		if err != nil {
			return weight, err
		}
		k.emitRollup(ctx, types.TierHundred, blockNumber, n)
	}

	if IsThousandBoundary(blockNumber) {
		n, err := k.rollThousand(ctx)
		if err != nil {
			return weight, err
		}
		k.emitRollup(ctx, types.TierThousand, blockNumber, n)
	}

	return weight, nil
}

// rollTen pushes this block's observation of every tracked pair into its
// ten-block window.
func (k Keeper) rollTen(ctx context.Context) error {
	type update struct {
		seq    uint64
		window types.TenWindow
	}

	var (
		updates []update
		iterErr error
	)
	err := k.IterateTenWindows(ctx, func(seq uint64, window types.TenWindow) bool {
		entry, found, err := k.GetAccumulatedEntry(ctx, window.Pair)
		if err != nil {
			iterErr = err
			return true
		}

		observation := window.Queue.Last()
		if found {
			observation = entry.ToPriceInfo()
		}
		window.Queue.Push(observation)
		updates = append(updates, update{seq: seq, window: window})
		return false
	})
	if err != nil {
		return err
	}
	if iterErr != nil {
		return iterErr
	}

	for _, u := range updates {
		if err := k.setTenWindow(ctx, u.seq, u.window); err != nil {
			return err
		}
		k.recordSpotPrice(u.window.Pair, u.window.Queue.Last())
	}
	return nil
}

// rollHundred pushes the ten-block average of every tracked pair into its
// hundred-block window, creating the window on first use.
func (k Keeper) rollHundred(ctx context.Context) (int, error) {
	windows, err := k.GetAllTenWindows(ctx)
	if err != nil {
		return 0, err
	}

	for _, ten := range windows {
		hundred, found, err := k.GetHundredWindow(ctx, ten.Pair)
		if err != nil {
			return 0, err
		}
		if !found {
			hundred = types.NewBucketQueue()
		}
		hundred.Push(ten.Queue.Average())
		if err := k.SetHundredWindow(ctx, ten.Pair, hundred); err != nil {
			return 0, err
		}
	}
	return len(windows), nil
}

// rollThousand pushes the hundred-block average of every pair holding a
// hundred-block window into its thousand-block window.
func (k Keeper) rollThousand(ctx context.Context) (int, error) {
	windows, err := k.GetAllHundredWindows(ctx)
	if err != nil {
		return 0, err
	}

	for _, hundred := range windows {
		thousand, found, err := k.GetThousandWindow(ctx, hundred.Pair)
		if err != nil {
			return 0, err
		}
		if !found {
			thousand = types.NewBucketQueue()
		}
		thousand.Push(hundred.Queue.Average())
		if err := k.SetThousandWindow(ctx, hundred.Pair, thousand); err != nil {
			return 0, err
		}
	}
	return len(windows), nil
}

func (k Keeper) emitRollup(ctx context.Context, tier types.Tier, blockNumber uint64, pairs int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRollup,
			sdk.NewAttribute(types.AttributeKeyTier, tier.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", blockNumber)),
			sdk.NewAttribute(types.AttributeKeyPairs, fmt.Sprintf("%d", pairs)),
		),
	)

	k.metrics.RollupsTotal.WithLabelValues(tier.String()).Inc()
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "rollup"},
		1,
		[]metrics.Label{telemetry.NewLabel("tier", tier.String())},
	)

	k.Logger(ctx).Debug("rolled up windows", "tier", tier.String(), "height", blockNumber, "pairs", pairs)
}
