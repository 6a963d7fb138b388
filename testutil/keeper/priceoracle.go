package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/priceoracle/x/priceoracle/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// PriceOracleKeeper creates a test keeper for the price oracle module on an
// in-memory multistore.
func PriceOracleKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(runtime.NewKVStoreService(storeKey), types.DefaultWeights{})

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx
}

// PriceEntry builds a trade observation from a decimal price string.
func PriceEntry(t testing.TB, price string, tradeAmount, liquidityAmount int64) types.PriceEntry {
	p, err := math.LegacyNewDecFromStr(price)
	require.NoError(t, err)
	return types.NewPriceEntry(p, math.NewInt(tradeAmount), math.NewInt(liquidityAmount))
}

// AdvanceTo runs the rollup for every block in [from, to], returning the
// context positioned at the last block.
func AdvanceTo(t testing.TB, k keeper.Keeper, ctx sdk.Context, from, to int64) sdk.Context {
	for h := from; h <= to; h++ {
		ctx = ctx.WithBlockHeight(h)
		require.NoError(t, k.BeginBlocker(ctx))
	}
	return ctx
}
