package types

import (
	"cosmossdk.io/errors"
)

// Price oracle module sentinel errors
var (
	ErrInvalidAssetPair = errors.Register(ModuleName, 2, "invalid asset pair")
	ErrInvalidTier      = errors.Register(ModuleName, 3, "invalid window tier")
	ErrInvalidGenesis   = errors.Register(ModuleName, 4, "invalid genesis state")
	ErrCorruptedState   = errors.Register(ModuleName, 5, "corrupted oracle state")
	ErrInvalidWindow    = errors.Register(ModuleName, 6, "invalid bucket queue")
	ErrInvalidEntry     = errors.Register(ModuleName, 7, "invalid price entry")
)
