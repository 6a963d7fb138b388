package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SetNumOfTrackedAssetsForTest overwrites the tracked asset counter so keeper_test packages can reach its bounds.
func SetNumOfTrackedAssetsForTest(k Keeper, ctx sdk.Context, count uint32) {
	k.setNumOfTrackedAssets(ctx, count)
}
