package types

import "strings"

// Tier selects one of the three window resolutions.
type Tier uint8

const (
	// TierTen holds one snapshot per block for the last ten blocks.
	TierTen Tier = iota + 1
	// TierHundred holds one ten-block average per ten blocks.
	TierHundred
	// TierThousand holds one hundred-block average per hundred blocks.
	TierThousand
)

// Period returns the number of blocks between two snapshots of the tier.
func (t Tier) Period() uint64 {
	switch t {
	case TierTen:
		return 1
	case TierHundred:
		return BucketSize
	case TierThousand:
		return BucketSize * BucketSize
	default:
		return 0
	}
}

// Validate rejects unknown tiers.
func (t Tier) Validate() error {
	switch t {
	case TierTen, TierHundred, TierThousand:
		return nil
	default:
		return ErrInvalidTier.Wrapf("unknown tier %d", uint8(t))
	}
}

func (t Tier) String() string {
	switch t {
	case TierTen:
		return "ten"
	case TierHundred:
		return "hundred"
	case TierThousand:
		return "thousand"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name ("ten", "hundred", "thousand") to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ten", "10":
		return TierTen, nil
	case "hundred", "100":
		return TierHundred, nil
	case "thousand", "1000":
		return TierThousand, nil
	default:
		return 0, ErrInvalidTier.Wrapf("unknown tier %q", s)
	}
}
