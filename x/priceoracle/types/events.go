package types

// Event types for the price oracle module
const (
	EventTypePairRegistered = "priceoracle_pair_registered"
	EventTypeTradeDropped   = "priceoracle_trade_dropped"
	EventTypeRollup         = "priceoracle_rollup"
	EventTypeBeginBlock     = "priceoracle_begin_block"
)

// Event attribute keys for the price oracle module
const (
	AttributeKeyPair          = "pair"
	AttributeKeyTrackedAssets = "tracked_assets"
	AttributeKeyTier          = "tier"
	AttributeKeyHeight        = "height"
	AttributeKeyPairs         = "pairs"
	AttributeKeyReason        = "reason"
	AttributeKeyWeight        = "weight"
)

// Reasons attached to EventTypeTradeDropped
const (
	DropReasonOverflow = "overflow"
)
