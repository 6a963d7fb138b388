package types

import (
	sdkmath "cosmossdk.io/math"
)

// BucketQueue is a sliding window holding the last BucketSize snapshots,
// oldest first.
type BucketQueue struct {
	Values []PriceInfo `json:"values"`
}

// NewBucketQueue returns an empty window.
func NewBucketQueue() BucketQueue {
	return BucketQueue{Values: []PriceInfo{}}
}

// Len returns the number of snapshots held.
func (q BucketQueue) Len() int {
	return len(q.Values)
}

// Push appends a snapshot, evicting the oldest one once the window is full.
// Copies of q taken before the call are left untouched.
func (q *BucketQueue) Push(value PriceInfo) {
	kept := q.Values
	if len(kept) >= BucketSize {
		kept = kept[len(kept)-BucketSize+1:]
	}
	values := make([]PriceInfo, 0, BucketSize)
	values = append(values, kept...)
	q.Values = append(values, value)
}

// Last returns the newest snapshot, or ZeroPriceInfo when the window is empty.
func (q BucketQueue) Last() PriceInfo {
	if len(q.Values) == 0 {
		return ZeroPriceInfo()
	}
	return q.Values[len(q.Values)-1]
}

// Average returns the arithmetic mean of prices and volumes held, both
// truncated. An empty window averages to ZeroPriceInfo.
func (q BucketQueue) Average() PriceInfo {
	if len(q.Values) == 0 {
		return ZeroPriceInfo()
	}

	priceSum := sdkmath.LegacyZeroDec()
	volumeSum := sdkmath.ZeroInt()
	for _, v := range q.Values {
		if !v.AvgPrice.IsNil() {
			priceSum = priceSum.Add(v.AvgPrice)
		}
		if !v.Volume.IsNil() {
			volumeSum = volumeSum.Add(v.Volume)
		}
	}

	n := int64(len(q.Values))
	return PriceInfo{
		AvgPrice: priceSum.QuoInt64(n),
		Volume:   volumeSum.QuoRaw(n),
	}
}

// Validate checks the depth bound and every held snapshot.
func (q BucketQueue) Validate() error {
	if len(q.Values) > BucketSize {
		return ErrInvalidWindow.Wrapf("window holds %d values, capacity %d", len(q.Values), BucketSize)
	}
	for i, v := range q.Values {
		if err := v.Validate(); err != nil {
			return ErrInvalidWindow.Wrapf("value %d: %v", i, err)
		}
	}
	return nil
}
