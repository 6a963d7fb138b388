package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// AssetID identifies an asset traded in a pool.
type AssetID = uint32

// AssetPairIDLen is the length in bytes of an encoded asset pair id.
const AssetPairIDLen = 8

// AssetPair names a tradeable market. The pair is unordered: (a, b) and
// (b, a) identify the same market and share one set of windows.
type AssetPair struct {
	AssetIn  AssetID `json:"asset_in"`
	AssetOut AssetID `json:"asset_out"`
}

// NewAssetPair creates an asset pair
func NewAssetPair(assetIn, assetOut AssetID) AssetPair {
	return AssetPair{AssetIn: assetIn, AssetOut: assetOut}
}

// Ordered returns the pair with the lower asset id first.
func (p AssetPair) Ordered() AssetPair {
	if p.AssetIn > p.AssetOut {
		return AssetPair{AssetIn: p.AssetOut, AssetOut: p.AssetIn}
	}
	return p
}

// ID returns the store identifier of the pair: both asset ids, lowest
// first, big-endian.
func (p AssetPair) ID() []byte {
	o := p.Ordered()
	bz := make([]byte, AssetPairIDLen)
	binary.BigEndian.PutUint32(bz[:4], o.AssetIn)
	binary.BigEndian.PutUint32(bz[4:], o.AssetOut)
	return bz
}

// Equal reports whether two pairs name the same market.
func (p AssetPair) Equal(other AssetPair) bool {
	return p.Ordered() == other.Ordered()
}

// Validate rejects pairs of an asset with itself.
func (p AssetPair) Validate() error {
	if p.AssetIn == p.AssetOut {
		return ErrInvalidAssetPair.Wrapf("asset %d paired with itself", p.AssetIn)
	}
	return nil
}

func (p AssetPair) String() string {
	o := p.Ordered()
	return fmt.Sprintf("%d/%d", o.AssetIn, o.AssetOut)
}

// AssetPairFromID decodes an identifier produced by AssetPair.ID.
func AssetPairFromID(id []byte) (AssetPair, error) {
	if len(id) != AssetPairIDLen {
		return AssetPair{}, ErrInvalidAssetPair.Wrapf("id length %d, expected %d", len(id), AssetPairIDLen)
	}
	return AssetPair{
		AssetIn:  binary.BigEndian.Uint32(id[:4]),
		AssetOut: binary.BigEndian.Uint32(id[4:]),
	}, nil
}

// ParseAssetPair parses the "<asset>/<asset>" form printed by String.
func ParseAssetPair(s string) (AssetPair, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return AssetPair{}, ErrInvalidAssetPair.Wrapf("expected <asset>/<asset>, got %q", s)
	}

	var ids [2]AssetID
	for i, part := range parts {
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return AssetPair{}, ErrInvalidAssetPair.Wrapf("asset %q: %s", part, err)
		}
		ids[i] = AssetID(id)
	}

	pair := NewAssetPair(ids[0], ids[1])
	return pair, pair.Validate()
}
