package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "priceoracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// BucketSize is the depth W of every sliding window. The hundred tier
	// rolls every W blocks and the thousand tier every W*W blocks.
	BucketSize = 10
)

// Store key prefixes
var (
	// NumOfTrackedAssetsKey holds the number of registered asset pairs
	NumOfTrackedAssetsKey = []byte{0x01}

	// AccumulatorKeyPrefix holds the in-flight combined entry of the current block
	AccumulatorKeyPrefix = []byte{0x02}

	// TenKeyPrefix holds the ordered ten-block windows, keyed by registration sequence
	TenKeyPrefix = []byte{0x03}

	// TenIndexKeyPrefix maps an asset pair id to its sequence under TenKeyPrefix
	TenIndexKeyPrefix = []byte{0x04}

	// HundredKeyPrefix holds the hundred-block windows keyed by asset pair id
	HundredKeyPrefix = []byte{0x05}

	// ThousandKeyPrefix holds the thousand-block windows keyed by asset pair id
	ThousandKeyPrefix = []byte{0x06}
)

// AccumulatorKey returns the store key of the accumulated entry for a pair
func AccumulatorKey(pairID []byte) []byte {
	return append(append([]byte{}, AccumulatorKeyPrefix...), pairID...)
}

// TenKey returns the store key of the ten-block window at a registration sequence
func TenKey(seq uint64) []byte {
	return append(append([]byte{}, TenKeyPrefix...), sdk.Uint64ToBigEndian(seq)...)
}

// TenIndexKey returns the index key of a pair's ten-block window
func TenIndexKey(pairID []byte) []byte {
	return append(append([]byte{}, TenIndexKeyPrefix...), pairID...)
}

// HundredKey returns the store key of the hundred-block window for a pair
func HundredKey(pairID []byte) []byte {
	return append(append([]byte{}, HundredKeyPrefix...), pairID...)
}

// ThousandKey returns the store key of the thousand-block window for a pair
func ThousandKey(pairID []byte) []byte {
	return append(append([]byte{}, ThousandKeyPrefix...), pairID...)
}
