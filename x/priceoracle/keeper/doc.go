// Package keeper implements the price oracle module keeper.
//
// The price oracle turns the trades reported by AMM pools into
// volume-weighted price snapshots at three resolutions: the last 10 blocks,
// the last 100 blocks (one value per 10 blocks) and the last 1000 blocks
// (one value per 100 blocks).
//
// # Core Functionality
//
// Registration: OnCreatePool starts tracking an unordered asset pair. Each
// tracked pair owns one ten-block window, kept in registration order.
//
// Accumulation: OnTrade folds every trade of the current block into one
// PriceEntry per pair. Combinations that overflow are dropped and the
// previous entry is kept.
//
// Rollup: AdvanceBlock, called from BeginBlocker, pushes each pair's entry
// (or its last snapshot when it did not trade) into its ten-block window,
// clears the accumulator, and on block numbers ending in 9 and 99 pushes
// window averages into the hundred- and thousand-block windows.
//
// # Usage Patterns
//
// Wiring the pool module:
//
//	poolKeeper.SetHooks(types.NewMultiAMMHooks(oracleKeeper.Hooks()))
//
// Reading a price:
//
//	info, found, err := keeper.GetOraclePrice(ctx, pair, types.TierHundred)
package keeper
