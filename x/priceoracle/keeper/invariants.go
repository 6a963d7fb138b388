package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// RegisterInvariants registers all price oracle module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "bounded-windows",
		BoundedWindowsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "registry-consistency",
		RegistryConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "tier-coverage",
		TierCoverageInvariant(k))
}

// AllInvariants runs all invariants of the price oracle module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := BoundedWindowsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = RegistryConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return TierCoverageInvariant(k)(ctx)
	}
}

// BoundedWindowsInvariant checks that no window holds more than BucketSize values
func BoundedWindowsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		check := func(tier types.Tier, pair types.AssetPair, queue types.BucketQueue) {
			if err := queue.Validate(); err != nil {
				issues = append(issues, fmt.Sprintf("%s window of %s: %v", tier, pair, err))
			}
		}

		if err := k.IterateTenWindows(ctx, func(_ uint64, w types.TenWindow) bool {
			check(types.TierTen, w.Pair, w.Queue)
			return false
		}); err != nil {
			issues = append(issues, err.Error())
		}
		if err := k.IterateHundredWindows(ctx, func(w types.PairWindow) bool {
			check(types.TierHundred, w.Pair, w.Queue)
			return false
		}); err != nil {
			issues = append(issues, err.Error())
		}
		if err := k.IterateThousandWindows(ctx, func(w types.PairWindow) bool {
			check(types.TierThousand, w.Pair, w.Queue)
			return false
		}); err != nil {
			issues = append(issues, err.Error())
		}

		return formatInvariant("bounded-windows", issues)
	}
}

// RegistryConsistencyInvariant checks that the tracked asset counter, the
// ten-block windows and their index agree
func RegistryConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		count := k.GetNumOfTrackedAssets(ctx)
		windows := uint64(0)
		err := k.IterateTenWindows(ctx, func(seq uint64, w types.TenWindow) bool {
			windows++
			if seq >= uint64(count) {
				issues = append(issues, fmt.Sprintf("ten window %s at sequence %d beyond counter %d", w.Pair, seq, count))
			}
			idx := k.getStore(ctx).Get(types.TenIndexKey(w.Pair.ID()))
			if idx == nil || sdk.BigEndianToUint64(idx) != seq {
				issues = append(issues, fmt.Sprintf("ten window %s at sequence %d is not indexed", w.Pair, seq))
			}
			return false
		})
		if err != nil {
			issues = append(issues, err.Error())
		}
		if windows != uint64(count) {
			issues = append(issues, fmt.Sprintf("counter %d but %d ten windows", count, windows))
		}

		return formatInvariant("registry-consistency", issues)
	}
}

// TierCoverageInvariant checks that hundred- and thousand-block windows only
// exist for tracked pairs
func TierCoverageInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		check := func(tier types.Tier) func(types.PairWindow) bool {
			return func(w types.PairWindow) bool {
				if !k.IsTracked(ctx, w.Pair) {
					issues = append(issues, fmt.Sprintf("%s window for untracked pair %s", tier, w.Pair))
				}
				return false
			}
		}

		if err := k.IterateHundredWindows(ctx, check(types.TierHundred)); err != nil {
			issues = append(issues, err.Error())
		}
		if err := k.IterateThousandWindows(ctx, check(types.TierThousand)); err != nil {
			issues = append(issues, err.Error())
		}

		return formatInvariant("tier-coverage", issues)
	}
}

func formatInvariant(route string, issues []string) (string, bool) {
	broken := len(issues) > 0
	msg := fmt.Sprintf("%d issues found", len(issues))
	for _, issue := range issues {
		msg += "\n\t" + issue
	}
	return sdk.FormatInvariant(types.ModuleName, route, msg), broken
}
