package keeper

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// BeginBlocker is called at the beginning of every block.
// It rolls the previous block's trades into the price windows.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), telemetry.MetricKeyBeginBlocker)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()
	if height < 0 {
		height = 0
	}

	weight, err := k.AdvanceBlock(ctx, uint64(height))
	if err != nil {
		k.Logger(ctx).Error("failed to roll price windows", "height", height, "error", err)
		// Don't return error - log and continue
	}
	k.metrics.BlockWeight.Set(float64(weight))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBeginBlock,
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", height)),
			sdk.NewAttribute(types.AttributeKeyWeight, fmt.Sprintf("%d", weight)),
		),
	)

	return nil
}
