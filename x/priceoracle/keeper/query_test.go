package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/priceoracle/testutil/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

func TestQuery_UnregisteredPair(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)

	_, found, err := k.SpotSnapshot(ctx, pairA)
	require.NoError(t, err)
	require.False(t, found)

	for _, tier := range []types.Tier{types.TierTen, types.TierHundred, types.TierThousand} {
		_, found, err := k.GetOraclePrice(ctx, pairA, tier)
		require.NoError(t, err)
		require.False(t, found)
	}
	require.Zero(t, k.TrackedPairCount(ctx))
}

func TestQuery_InvalidTier(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))

	_, _, err := k.TierSnapshot(ctx, pairA, types.Tier(0))
	require.ErrorIs(t, err, types.ErrInvalidTier)

	_, _, err = k.GetOraclePrice(ctx, pairA, types.Tier(9))
	require.ErrorIs(t, err, types.ErrInvalidTier)
}

func TestQuery_GetOraclePriceAveragesTier(t *testing.T) {
	k, ctx := keepertest.PriceOracleKeeper(t)
	require.NoError(t, k.OnCreatePool(ctx, pairA))
	require.Equal(t, uint32(1), k.TrackedPairCount(ctx))

	_, err := k.AdvanceBlock(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, k.OnTrade(ctx, pairA, keepertest.PriceEntry(t, "4", 10, 1)))
	_, err = k.AdvanceBlock(ctx, 1)
	require.NoError(t, err)

	// ten window holds the default and one observation
	price, found, err := k.GetOraclePrice(ctx, pairA, types.TierTen)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "2.000000000000000000", price.AvgPrice.String())
	require.Equal(t, "5", price.Volume.String())

	spot, found, err := k.SpotSnapshot(ctx, pairA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "4.000000000000000000", spot.AvgPrice.String())

	// no hundred window before the first boundary
	_, found, err = k.GetOraclePrice(ctx, pairA, types.TierHundred)
	require.NoError(t, err)
	require.False(t, found)
}
