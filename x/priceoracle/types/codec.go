package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes every value the module persists and its genesis JSON.
// The module defines no protobuf messages or services, so its state types
// are plain Go structs encoded with legacy amino rather than generated from
// .proto files. None of them are interfaces, so nothing is registered on it.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	ModuleCdc.Seal()
}
