package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// Keeper owns all price oracle state. It holds no state of its own beyond
// the handle to the module store.
type Keeper struct {
	cdc          *codec.LegacyAmino
	storeService store.KVStoreService
	weights      types.WeightInfo
	metrics      *OracleMetrics
}

// NewKeeper creates a new price oracle Keeper instance. A nil weights
// argument selects types.DefaultWeights.
func NewKeeper(storeService store.KVStoreService, weights types.WeightInfo) Keeper {
	if weights == nil {
		weights = types.DefaultWeights{}
	}
	return Keeper{
		cdc:          types.ModuleCdc,
		storeService: storeService,
		weights:      weights,
		metrics:      NewOracleMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Weights returns the cost model used by the keeper.
func (k Keeper) Weights() types.WeightInfo {
	return k.weights
}

// getStore returns the KVStore for the price oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}

func (k Keeper) marshal(v interface{}) ([]byte, error) {
	bz, err := k.cdc.Marshal(v)
	if err != nil {
		return nil, types.ErrCorruptedState.Wrapf("encode %T: %v", v, err)
	}
	return bz, nil
}

func (k Keeper) unmarshal(bz []byte, ptr interface{}) error {
	if err := k.cdc.Unmarshal(bz, ptr); err != nil {
		return types.ErrCorruptedState.Wrapf("decode %T: %v", ptr, err)
	}
	return nil
}
