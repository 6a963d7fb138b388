package keeper_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/priceoracle/testutil/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

func TestAdvanceBlock_SpotSnapshotIsVolumeWeighted(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	pair := types.NewAssetPair(1, 2)

	require.NoError(t, k.OnCreatePool(ctx, pair))
	_, err := k.AdvanceBlock(ctx, 0)
	require.NoError(t, err)

	ctx = ctx.WithBlockHeight(1)
	require.NoError(t, k.OnTrade(ctx, pair, keepertest.PriceEntry(t, "2.0", 100, 50)))
	require.NoError(t, k.OnTrade(ctx, pair, keepertest.PriceEntry(t, "4.0", 300, 50)))
	_, err = k.AdvanceBlock(ctx, 1)
	require.NoError(t, err)

	snapshot, found, err := k.SpotSnapshot(ctx, pair)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "3.500000000000000000", snapshot.AvgPrice.String())
	require.Equal(t, "400", snapshot.Volume.String())

	// the accumulator is block scoped
	_, found, err = k.GetAccumulatedEntry(ctx, pair)
	require.NoError(t, err)
	require.False(t, found)
}

func TestAdvanceBlock_CarriesForwardWithoutTrades(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	require.NoError(t, k.OnTrade(ctx, pairA, keepertest.PriceEntry(t, "5", 20, 20)))
	_, err := k.AdvanceBlock(ctx, 1)
	require.NoError(t, err)

	for h := uint64(2); h <= 4; h++ {
		_, err = k.AdvanceBlock(ctx, h)
		require.NoError(t, err)
	}

	queue, found, err := k.GetTenWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 4, queue.Len())
	for i, v := range queue.Values {
		require.Equal(t, "5.000000000000000000", v.AvgPrice.String(), "slot %d", i)
		require.Equal(t, "20", v.Volume.String(), "slot %d", i)
	}
}

func TestAdvanceBlock_NoTradeEverPushesDefault(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	_, err := k.AdvanceBlock(ctx, 0)
	require.NoError(t, err)

	queue, found, err := k.GetTenWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, queue.Len())
	require.True(t, queue.Last().IsZero())
}

func TestAdvanceBlock_HundredBoundary(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	_, err := k.AdvanceBlock(ctx, 0)
	require.NoError(t, err)

	for h := int64(1); h <= 9; h++ {
		require.NoError(t, k.OnTrade(ctx, pairA, types.NewPriceEntry(sdkmath.LegacyNewDec(h), sdkmath.NewInt(h*10), sdkmath.NewInt(1))))

		if h == 9 {
			_, found, err := k.GetHundredWindow(ctx, pairA)
			require.NoError(t, err)
			require.False(t, found, "hundred window must not exist before the first boundary")
		}

		_, err := k.AdvanceBlock(ctx, uint64(h))
		require.NoError(t, err)
	}

	hundred, found, err := k.GetHundredWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, hundred.Len())
	// average of the block zero default and prices 1..9
	require.Equal(t, "4.500000000000000000", hundred.Last().AvgPrice.String())
	require.Equal(t, "45", hundred.Last().Volume.String())
	require.Equal(t, 1, countEvents(ctx, types.EventTypeRollup))

	// blocks 10..19 carry the block 9 observation forward
	for h := uint64(10); h <= 19; h++ {
		_, err := k.AdvanceBlock(ctx, h)
		require.NoError(t, err)
	}
	hundred, _, err = k.GetHundredWindow(ctx, pairA)
	require.NoError(t, err)
	require.Equal(t, 2, hundred.Len())
	require.Equal(t, "9.000000000000000000", hundred.Last().AvgPrice.String())
	require.Equal(t, "90", hundred.Last().Volume.String())

	_, found, err = k.GetThousandWindow(ctx, pairA)
	require.NoError(t, err)
	require.False(t, found)
}

func TestAdvanceBlock_ThousandBoundary(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))
	require.NoError(t, k.OnTrade(ctx, pairA, keepertest.PriceEntry(t, "8", 16, 1)))

	for h := uint64(0); h < 99; h++ {
		_, err := k.AdvanceBlock(ctx, h)
		require.NoError(t, err)
	}
	_, found, err := k.GetThousandWindow(ctx, pairA)
	require.NoError(t, err)
	require.False(t, found)

	_, err = k.AdvanceBlock(ctx, 99)
	require.NoError(t, err)

	thousand, found, err := k.GetThousandWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, thousand.Len())

	hundred, _, err := k.GetHundredWindow(ctx, pairA)
	require.NoError(t, err)
	require.Equal(t, types.BucketSize, hundred.Len())
	require.True(t, thousand.Last().Equal(hundred.Average()))
	require.Equal(t, "8.000000000000000000", thousand.Last().AvgPrice.String())
}

func TestAdvanceBlock_LatePairJoinsThousandAfterHundred(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	for h := uint64(0); h <= 98; h++ {
		if h == 95 {
			require.NoError(t, k.OnCreatePool(ctx, pairB))
		}
		_, err := k.AdvanceBlock(ctx, h)
		require.NoError(t, err)
	}

	// pairB has no hundred window yet: 95..98 holds no ten-block boundary
	_, found, err := k.GetHundredWindow(ctx, pairB)
	require.NoError(t, err)
	require.False(t, found)

	_, err = k.AdvanceBlock(ctx, 99)
	require.NoError(t, err)

	// the hundred roll at 99 runs before the thousand roll, so both pairs reach it
	for _, p := range []types.AssetPair{pairA, pairB} {
		_, found, err := k.GetThousandWindow(ctx, p)
		require.NoError(t, err)
		require.True(t, found, "pair %s", p)
	}
}

func TestAdvanceBlock_ToleratesGaps(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	_, err := k.AdvanceBlock(ctx, 3)
	require.NoError(t, err)
	_, err = k.AdvanceBlock(ctx, 29)
	require.NoError(t, err)

	hundred, found, err := k.GetHundredWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, hundred.Len())
}

func TestAdvanceBlock_WindowsStayBounded(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))
	require.NoError(t, k.OnCreatePool(ctx, pairB))

	for h := int64(0); h < 1_200; h++ {
		ctx = ctx.WithBlockHeight(h)
		require.NoError(t, k.OnTrade(ctx, pairA, types.NewPriceEntry(sdkmath.LegacyNewDec(h%7+1), sdkmath.NewInt(h+1), sdkmath.NewInt(1))))
		require.NoError(t, k.BeginBlocker(ctx))
	}

	for _, tier := range []types.Tier{types.TierTen, types.TierHundred, types.TierThousand} {
		for _, p := range []types.AssetPair{pairA, pairB} {
			queue, found, err := k.TierSnapshot(ctx, p, tier)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, types.BucketSize, queue.Len(), "%s window of %s", tier, p)
		}
	}

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestAdvanceBlock_ReportsWeight(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))
	require.NoError(t, k.OnCreatePool(ctx, pairB))

	weight, err := k.AdvanceBlock(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, types.DefaultWeights{}.OnInitialize(2), weight)
	require.Equal(t, types.WeightOnInitializeBase+2*types.WeightOnInitializePerPair, weight)
}

func TestBoundaries(t *testing.T) {
	require.True(t, keeper.IsHundredBoundary(9))
	require.True(t, keeper.IsHundredBoundary(1_239))
	require.False(t, keeper.IsHundredBoundary(10))
	require.False(t, keeper.IsHundredBoundary(0))

	require.True(t, keeper.IsThousandBoundary(99))
	require.True(t, keeper.IsThousandBoundary(1_099))
	require.False(t, keeper.IsThousandBoundary(9))
	require.False(t, keeper.IsThousandBoundary(100))
}

func TestAdvanceBlock_CounterOutOfStepWithWindows(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))
	keeper.SetNumOfTrackedAssetsForTest(k, ctx, math.MaxUint32)

	_, err := k.AdvanceBlock(ctx, 9)
	require.NoError(t, err)

	windows, err := k.GetAllTenWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	_, found, err := k.GetHundredWindow(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)

	_, broken := keeper.RegistryConsistencyInvariant(k)(ctx)
	require.True(t, broken)
}
