package keeper_test

import (
	"math"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/priceoracle/testutil/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

var (
	pairA = types.NewAssetPair(1_000, 2_000)
	pairB = types.NewAssetPair(1_000, 3_000)
)

func TestRegisterAssetPair_Idempotent(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	ctx = ctx.WithEventManager(sdk.NewEventManager())

	added, err := k.RegisterAssetPair(ctx, pairA)
	require.NoError(t, err)
	require.True(t, added)

	added, err = k.RegisterAssetPair(ctx, pairA)
	require.NoError(t, err)
	require.False(t, added)

	// same market, opposite orientation
	added, err = k.RegisterAssetPair(ctx, types.NewAssetPair(2_000, 1_000))
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, uint32(1), k.TrackedPairCount(ctx))
	windows, err := k.GetAllTenWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	require.Equal(t, pairA, windows[0].Pair)
	require.Zero(t, windows[0].Queue.Len())

	require.Equal(t, 1, countEvents(ctx, types.EventTypePairRegistered))
}

func TestRegisterAssetPair_KeepsRegistrationOrder(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)

	pairs := []types.AssetPair{
		types.NewAssetPair(9, 10),
		types.NewAssetPair(1, 2),
		types.NewAssetPair(5, 3),
	}
	for _, p := range pairs {
		require.NoError(t, k.OnCreatePool(ctx, p))
	}

	windows, err := k.GetAllTenWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, len(pairs))
	for i, p := range pairs {
		require.True(t, windows[i].Pair.Equal(p), "window %d holds %s", i, windows[i].Pair)
		require.True(t, k.IsTracked(ctx, p))
	}
	require.Equal(t, uint32(len(pairs)), k.GetNumOfTrackedAssets(ctx))
}

func TestOnCreatePool_IgnoresInvalidPair(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)

	require.NoError(t, k.OnCreatePool(ctx, types.NewAssetPair(4, 4)))
	require.Zero(t, k.TrackedPairCount(ctx))

	_, err := k.RegisterAssetPair(ctx, types.NewAssetPair(4, 4))
	require.ErrorIs(t, err, types.ErrInvalidAssetPair)
}

func TestRegisterAssetPair_SaturatedCounter(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	ctx = ctx.WithEventManager(sdk.NewEventManager())
	keeper.SetNumOfTrackedAssetsForTest(k, ctx, math.MaxUint32)

	pair := types.NewAssetPair(1, 2)
	added, err := k.RegisterAssetPair(ctx, pair)
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, uint32(math.MaxUint32), k.GetNumOfTrackedAssets(ctx))
	require.False(t, k.IsTracked(ctx, pair))
	require.Zero(t, countEvents(ctx, types.EventTypePairRegistered))

	// the pool hook swallows the refusal
	require.NoError(t, k.OnCreatePool(ctx, pair))
	require.False(t, k.IsTracked(ctx, pair))
}

func countEvents(ctx sdk.Context, eventType string) int {
	n := 0
	for _, e := range ctx.EventManager().Events() {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
