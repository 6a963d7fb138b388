package types

import (
	"context"
)

// AMMHooks is implemented by modules that observe pool activity.
// The price oracle implements it; a pool module calls it directly.
type AMMHooks interface {
	// AfterPoolCreated is called once a pool for the pair exists.
	AfterPoolCreated(ctx context.Context, pair AssetPair) error

	// AfterTrade is called for every executed trade with the observed price,
	// the traded volume and the pool liquidity.
	AfterTrade(ctx context.Context, pair AssetPair, entry PriceEntry) error
}

// MultiAMMHooks combines multiple AMM hooks into a single hook that calls all of them.
type MultiAMMHooks []AMMHooks

// NewMultiAMMHooks creates a new MultiAMMHooks from a list of hooks.
func NewMultiAMMHooks(hooks ...AMMHooks) MultiAMMHooks {
	return hooks
}

// AfterPoolCreated calls AfterPoolCreated on all registered hooks.
func (h MultiAMMHooks) AfterPoolCreated(ctx context.Context, pair AssetPair) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolCreated(ctx, pair); err != nil {
			return err
		}
	}
	return nil
}

// AfterTrade calls AfterTrade on all registered hooks.
func (h MultiAMMHooks) AfterTrade(ctx context.Context, pair AssetPair, entry PriceEntry) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterTrade(ctx, pair, entry); err != nil {
			return err
		}
	}
	return nil
}
