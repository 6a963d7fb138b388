package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/keeper"
	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

const simChainID = "oraclesim"

// Simulator runs the price oracle keeper on a committed multistore, one
// block per commit. Block height h is committed as store version h+1.
type Simulator struct {
	cms    storetypes.CommitMultiStore
	keeper keeper.Keeper
	logger log.Logger

	next int64
}

// NewSimulator loads the latest committed state from db, writing the
// default genesis when db is empty.
func NewSimulator(db dbm.DB, logger log.Logger) (*Simulator, error) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	s := &Simulator{
		cms:    cms,
		keeper: keeper.NewKeeper(runtime.NewKVStoreService(storeKey), types.DefaultWeights{}),
		logger: logger.With("module", "oraclesim"),
		next:   cms.LastCommitID().Version,
	}

	if s.next == 0 {
		if err := s.keeper.InitGenesis(s.context(0), *types.DefaultGenesis()); err != nil {
			return nil, fmt.Errorf("init genesis: %w", err)
		}
	}
	return s, nil
}

// Keeper exposes the simulated keeper for read access.
func (s *Simulator) Keeper() keeper.Keeper {
	return s.keeper
}

// NextHeight is the height the next RunBlock call will execute.
func (s *Simulator) NextHeight() int64 {
	return s.next
}

// AppHash is the hash of the last commit.
func (s *Simulator) AppHash() cmtbytes.HexBytes {
	return s.cms.LastCommitID().Hash
}

func (s *Simulator) context(height int64) sdk.Context {
	header := cmtproto.Header{ChainID: simChainID, Height: height}
	return sdk.NewContext(s.cms, header, false, s.logger)
}

// RunBlock executes the next block: the rollup first, then the scripted
// pool events, then a commit.
func (s *Simulator) RunBlock(block ScriptBlock) (storetypes.CommitID, error) {
	if block.Height != s.next {
		return storetypes.CommitID{}, fmt.Errorf("expected block %d, got %d", s.next, block.Height)
	}

	ctx := s.context(block.Height)
	if err := s.keeper.BeginBlocker(ctx); err != nil {
		return storetypes.CommitID{}, err
	}

	hooks := s.keeper.Hooks()
	for _, pool := range block.Pools {
		if err := hooks.AfterPoolCreated(ctx, pool.Pair()); err != nil {
			return storetypes.CommitID{}, err
		}
	}
	for _, trade := range block.Trades {
		entry, err := trade.Entry()
		if err != nil {
			return storetypes.CommitID{}, err
		}
		if err := hooks.AfterTrade(ctx, trade.Pair(), entry); err != nil {
			return storetypes.CommitID{}, err
		}
	}
	for _, swap := range block.Swaps {
		transfer, liquidity, err := swap.Transfer()
		if err != nil {
			return storetypes.CommitID{}, err
		}
		if err := hooks.AfterSwap(ctx, transfer, liquidity); err != nil {
			return storetypes.CommitID{}, err
		}
	}

	id := s.cms.Commit()
	s.next++

	s.logger.Debug("committed block",
		"height", block.Height,
		"pools", len(block.Pools),
		"trades", len(block.Trades)+len(block.Swaps),
		"gas_used", ctx.GasMeter().GasConsumed(),
		"app_hash", cmtbytes.HexBytes(id.Hash),
	)
	return id, nil
}

// Replay runs every height from NextHeight up to the last scripted height,
// or up to until when it is higher. Heights without scripted events run as
// empty blocks.
func (s *Simulator) Replay(script Script, until int64) error {
	last := script.LastHeight()
	if until > last {
		last = until
	}

	blocks := make(map[int64]ScriptBlock, len(script.Blocks))
	for _, block := range script.Blocks {
		if block.Height < s.next {
			return fmt.Errorf("block %d is already committed", block.Height)
		}
		blocks[block.Height] = block
	}

	for h := s.next; h <= last; h++ {
		block, ok := blocks[h]
		if !ok {
			block = ScriptBlock{Height: h}
		}
		if _, err := s.RunBlock(block); err != nil {
			return err
		}
	}

	s.logger.Info("replay finished",
		"height", s.next-1,
		"tracked_pairs", s.keeper.TrackedPairCount(s.context(s.next-1)),
		"app_hash", s.AppHash(),
	)
	return nil
}

// PairSnapshot is the state of every tier of one pair.
type PairSnapshot struct {
	Pair     string             `json:"pair"`
	Spot     types.PriceInfo    `json:"spot"`
	Ten      types.BucketQueue  `json:"ten"`
	Hundred  *types.BucketQueue `json:"hundred,omitempty"`
	Thousand *types.BucketQueue `json:"thousand,omitempty"`

	TenAverage      types.PriceInfo  `json:"ten_average"`
	HundredAverage  *types.PriceInfo `json:"hundred_average,omitempty"`
	ThousandAverage *types.PriceInfo `json:"thousand_average,omitempty"`
}

// Snapshot is the oracle state at the last committed height.
type Snapshot struct {
	Height       int64             `json:"height"`
	AppHash      cmtbytes.HexBytes `json:"app_hash"`
	TrackedPairs uint32            `json:"tracked_pairs"`
	RollupWeight uint64            `json:"rollup_weight"`
	Pairs        []PairSnapshot    `json:"pairs"`
}

// Snapshot reads every tier of every tracked pair in registration order.
func (s *Simulator) Snapshot() (Snapshot, error) {
	ctx := s.context(s.next - 1)

	windows, err := s.keeper.GetAllTenWindows(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	tracked := s.keeper.TrackedPairCount(ctx)
	snapshot := Snapshot{
		Height:       s.next - 1,
		AppHash:      s.AppHash(),
		TrackedPairs: tracked,
		RollupWeight: s.keeper.Weights().OnInitialize(tracked),
		Pairs:        make([]PairSnapshot, 0, len(windows)),
	}

	for _, window := range windows {
		ps := PairSnapshot{
			Pair:       window.Pair.String(),
			Spot:       window.Queue.Last(),
			Ten:        window.Queue,
			TenAverage: window.Queue.Average(),
		}

		hundred, found, err := s.keeper.GetHundredWindow(ctx, window.Pair)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			avg := hundred.Average()
			ps.Hundred, ps.HundredAverage = &hundred, &avg
		}

		thousand, found, err := s.keeper.GetThousandWindow(ctx, window.Pair)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			avg := thousand.Average()
			ps.Thousand, ps.ThousandAverage = &thousand, &avg
		}

		snapshot.Pairs = append(snapshot.Pairs, ps)
	}
	return snapshot, nil
}

// OraclePrice returns the tier average of a pair at the last committed height.
func (s *Simulator) OraclePrice(pair types.AssetPair, tier types.Tier) (types.PriceInfo, bool, error) {
	return s.keeper.GetOraclePrice(s.context(s.next-1), pair, tier)
}
