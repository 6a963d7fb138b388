package types

import (
	"fmt"
)

// GenesisState is the exported oracle state. The per-block accumulator is
// empty between blocks and is therefore never part of genesis.
type GenesisState struct {
	NumOfTrackedAssets uint32       `json:"num_of_tracked_assets"`
	Ten                []TenWindow  `json:"ten"`
	Hundred            []PairWindow `json:"hundred"`
	Thousand           []PairWindow `json:"thousand"`
}

// DefaultGenesis returns the default genesis state: nothing tracked.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		NumOfTrackedAssets: 0,
		Ten:                []TenWindow{},
		Hundred:            []PairWindow{},
		Thousand:           []PairWindow{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if int(gs.NumOfTrackedAssets) != len(gs.Ten) {
		return ErrInvalidGenesis.Wrapf("num_of_tracked_assets %d does not match %d ten windows",
			gs.NumOfTrackedAssets, len(gs.Ten))
	}

	tracked := make(map[string]struct{}, len(gs.Ten))
	for i, w := range gs.Ten {
		if err := w.Pair.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("ten[%d]: %v", i, err)
		}
		key := string(w.Pair.ID())
		if _, dup := tracked[key]; dup {
			return ErrInvalidGenesis.Wrapf("ten[%d]: duplicate pair %s", i, w.Pair)
		}
		tracked[key] = struct{}{}
		if err := w.Queue.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("ten[%d] %s: %v", i, w.Pair, err)
		}
	}

	if err := validatePairWindows("hundred", gs.Hundred, tracked); err != nil {
		return err
	}
	return validatePairWindows("thousand", gs.Thousand, tracked)
}

func validatePairWindows(tier string, windows []PairWindow, tracked map[string]struct{}) error {
	seen := make(map[string]struct{}, len(windows))
	for i, w := range windows {
		label := fmt.Sprintf("%s[%d]", tier, i)
		if err := w.Pair.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("%s: %v", label, err)
		}
		key := string(w.Pair.ID())
		if _, ok := tracked[key]; !ok {
			return ErrInvalidGenesis.Wrapf("%s: pair %s is not tracked", label, w.Pair)
		}
		if _, dup := seen[key]; dup {
			return ErrInvalidGenesis.Wrapf("%s: duplicate pair %s", label, w.Pair)
		}
		seen[key] = struct{}{}
		if err := w.Queue.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("%s %s: %v", label, w.Pair, err)
		}
	}
	return nil
}
