package types

import (
	sdkmath "cosmossdk.io/math"
)

// PriceInfo is a finalized (average price, volume) snapshot held in windows.
type PriceInfo struct {
	AvgPrice sdkmath.LegacyDec `json:"avg_price"`
	Volume   sdkmath.Int       `json:"volume"`
}

// ZeroPriceInfo is the value reported for empty windows.
func ZeroPriceInfo() PriceInfo {
	return PriceInfo{
		AvgPrice: sdkmath.LegacyZeroDec(),
		Volume:   sdkmath.ZeroInt(),
	}
}

// IsZero reports whether the snapshot carries neither price nor volume.
func (p PriceInfo) IsZero() bool {
	return (p.AvgPrice.IsNil() || p.AvgPrice.IsZero()) && (p.Volume.IsNil() || p.Volume.IsZero())
}

// Equal compares two snapshots by value.
func (p PriceInfo) Equal(other PriceInfo) bool {
	if p.AvgPrice.IsNil() || p.Volume.IsNil() || other.AvgPrice.IsNil() || other.Volume.IsNil() {
		return p.IsZero() && other.IsZero()
	}
	return p.AvgPrice.Equal(other.AvgPrice) && p.Volume.Equal(other.Volume)
}

// Validate rejects unset or negative fields.
func (p PriceInfo) Validate() error {
	if p.AvgPrice.IsNil() || p.Volume.IsNil() {
		return ErrInvalidWindow.Wrap("price info has unset fields")
	}
	if p.AvgPrice.IsNegative() {
		return ErrInvalidWindow.Wrapf("negative average price %s", p.AvgPrice)
	}
	if p.Volume.IsNegative() {
		return ErrInvalidWindow.Wrapf("negative volume %s", p.Volume)
	}
	return nil
}
