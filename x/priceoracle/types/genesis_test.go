package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

func TestGenesisState_Validate(t *testing.T) {
	pairA := types.NewAssetPair(1_000, 2_000)
	pairB := types.NewAssetPair(1_000, 3_000)

	full := func() types.GenesisState {
		q := types.NewBucketQueue()
		q.Push(info(2, 100))
		return types.GenesisState{
			NumOfTrackedAssets: 2,
			Ten: []types.TenWindow{
				{Pair: pairA, Queue: q},
				{Pair: pairB, Queue: types.NewBucketQueue()},
			},
			Hundred:  []types.PairWindow{{Pair: pairA, Queue: q}},
			Thousand: []types.PairWindow{{Pair: pairA, Queue: q}},
		}
	}

	tests := []struct {
		name   string
		mutate func(gs *types.GenesisState)
		valid  bool
	}{
		{"default", nil, true},
		{"full", func(gs *types.GenesisState) { *gs = full() }, true},
		{"counter mismatch", func(gs *types.GenesisState) {
			*gs = full()
			gs.NumOfTrackedAssets = 3
		}, false},
		{"duplicate ten pair", func(gs *types.GenesisState) {
			*gs = full()
			gs.Ten[1].Pair = types.NewAssetPair(2_000, 1_000)
		}, false},
		{"self pair", func(gs *types.GenesisState) {
			*gs = full()
			gs.Ten[1].Pair = types.NewAssetPair(5, 5)
		}, false},
		{"untracked hundred pair", func(gs *types.GenesisState) {
			*gs = full()
			gs.Hundred[0].Pair = types.NewAssetPair(4, 5)
		}, false},
		{"duplicate thousand pair", func(gs *types.GenesisState) {
			*gs = full()
			gs.Thousand = append(gs.Thousand, gs.Thousand[0])
		}, false},
		{"overfull window", func(gs *types.GenesisState) {
			*gs = full()
			for i := 0; i <= types.BucketSize; i++ {
				gs.Ten[1].Queue.Values = append(gs.Ten[1].Queue.Values, info(1, 1))
			}
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := *types.DefaultGenesis()
			if tc.mutate != nil {
				tc.mutate(&gs)
			}
			err := gs.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidGenesis)
			}
		})
	}
}

func TestGenesisState_AminoJSON(t *testing.T) {
	gs := types.DefaultGenesis()
	gs.NumOfTrackedAssets = 1
	q := types.NewBucketQueue()
	q.Push(info(3, 7))
	gs.Ten = append(gs.Ten, types.TenWindow{Pair: types.NewAssetPair(1, 2), Queue: q})

	bz := types.ModuleCdc.MustMarshalJSON(gs)

	var decoded types.GenesisState
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &decoded))
	require.NoError(t, decoded.Validate())
	require.Len(t, decoded.Ten, 1)
	require.True(t, decoded.Ten[0].Queue.Last().Equal(info(3, 7)))
}
