package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	for i, window := range genState.Ten {
		seq := uint64(i)
		if window.Queue.Values == nil {
			window.Queue = types.NewBucketQueue()
		}
		window.Pair = window.Pair.Ordered()
		if err := k.setTenWindow(ctx, seq, window); err != nil {
			return err
		}
		store.Set(types.TenIndexKey(window.Pair.ID()), sdk.Uint64ToBigEndian(seq))
	}
	k.setNumOfTrackedAssets(ctx, genState.NumOfTrackedAssets)

	for _, window := range genState.Hundred {
		if err := k.SetHundredWindow(ctx, window.Pair, window.Queue); err != nil {
			return err
		}
	}
	for _, window := range genState.Thousand {
		if err := k.SetThousandWindow(ctx, window.Pair, window.Queue); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("price oracle genesis initialized", "tracked_assets", genState.NumOfTrackedAssets)
	return nil
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	ten, err := k.GetAllTenWindows(ctx)
	if err != nil {
		return nil, err
	}
	hundred, err := k.GetAllHundredWindows(ctx)
	if err != nil {
		return nil, err
	}
	thousand, err := k.GetAllThousandWindows(ctx)
	if err != nil {
		return nil, err
	}

	gs := types.DefaultGenesis()
	gs.NumOfTrackedAssets = k.GetNumOfTrackedAssets(ctx)
	gs.Ten = append(gs.Ten, ten...)
	gs.Hundred = append(gs.Hundred, hundred...)
	gs.Thousand = append(gs.Thousand, thousand...)
	return gs, nil
}
