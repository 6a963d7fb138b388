package cmd_test

import (
	"testing"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/priceoracle/cmd/oraclesim/cmd"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

func newSimulator(t *testing.T, db dbm.DB) *cmd.Simulator {
	t.Helper()
	sim, err := cmd.NewSimulator(db, log.NewNopLogger())
	require.NoError(t, err)
	return sim
}

func TestSimulator_ReplaysScript(t *testing.T) {
	script, err := cmd.ParseScript([]byte(exampleScript))
	require.NoError(t, err)

	sim := newSimulator(t, dbm.NewMemDB())
	require.NoError(t, sim.Replay(script, 0))
	require.Equal(t, int64(6), sim.NextHeight())

	snapshot, err := sim.Snapshot()
	require.NoError(t, err)
	require.Equal(t, int64(5), snapshot.Height)
	require.Equal(t, uint32(1), snapshot.TrackedPairs)
	require.Equal(t, types.DefaultWeights{}.OnInitialize(1), snapshot.RollupWeight)
	require.Len(t, snapshot.Pairs, 1)

	pair := snapshot.Pairs[0]
	require.Equal(t, "1/2", pair.Pair)
	// block 1 pushes the default, block 2 rolls the block 1 trades and
	// blocks 3..5 carry them forward
	require.Equal(t, 5, pair.Ten.Len())
	require.Equal(t, "3.500000000000000000", pair.Spot.AvgPrice.String())
	require.Equal(t, "400", pair.Spot.Volume.String())
	require.Nil(t, pair.Hundred)
	require.Nil(t, pair.Thousand)
}

func TestSimulator_RunsEmptyBlocksUntilHeight(t *testing.T) {
	script, err := cmd.ParseScript([]byte(exampleScript))
	require.NoError(t, err)

	sim := newSimulator(t, dbm.NewMemDB())
	require.NoError(t, sim.Replay(script, 120))

	snapshot, err := sim.Snapshot()
	require.NoError(t, err)
	require.Equal(t, int64(120), snapshot.Height)

	pair := snapshot.Pairs[0]
	require.NotNil(t, pair.Hundred)
	require.NotNil(t, pair.Thousand)
	require.Equal(t, types.BucketSize, pair.Hundred.Len())
	require.Equal(t, 1, pair.Thousand.Len())
	// the swap in block 5 is rolled at block 6 and carried forward
	require.Equal(t, "0.250000000000000000", pair.Spot.AvgPrice.String())

	price, found, err := sim.OraclePrice(types.NewAssetPair(1, 2), types.TierHundred)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, price.Equal(*pair.HundredAverage))
}

func TestSimulator_DeterministicAppHash(t *testing.T) {
	script, err := cmd.ParseScript([]byte(exampleScript))
	require.NoError(t, err)

	first := newSimulator(t, dbm.NewMemDB())
	require.NoError(t, first.Replay(script, 250))

	second := newSimulator(t, dbm.NewMemDB())
	require.NoError(t, second.Replay(script, 250))

	require.NotEmpty(t, first.AppHash())
	require.Equal(t, first.AppHash(), second.AppHash())
}

func TestSimulator_ResumesFromCommittedState(t *testing.T) {
	script, err := cmd.ParseScript([]byte(exampleScript))
	require.NoError(t, err)

	reference := newSimulator(t, dbm.NewMemDB())
	require.NoError(t, reference.Replay(script, 40))

	db := dbm.NewMemDB()
	sim := newSimulator(t, db)
	require.NoError(t, sim.Replay(script, 20))

	resumed := newSimulator(t, db)
	require.Equal(t, int64(21), resumed.NextHeight())
	require.Equal(t, sim.AppHash(), resumed.AppHash())

	// scripted blocks below the committed height are rejected
	require.Error(t, resumed.Replay(script, 40))
	require.NoError(t, resumed.Replay(cmd.Script{}, 40))
	require.Equal(t, reference.AppHash(), resumed.AppHash())
}

func TestSimulator_RejectsOutOfOrderBlock(t *testing.T) {
	sim := newSimulator(t, dbm.NewMemDB())
	_, err := sim.RunBlock(cmd.ScriptBlock{Height: 3})
	require.Error(t, err)
}
