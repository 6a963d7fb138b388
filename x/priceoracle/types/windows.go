package types

// TenWindow is one element of the ordered ten-block collection.
type TenWindow struct {
	Pair  AssetPair   `json:"pair"`
	Queue BucketQueue `json:"queue"`
}

// PairWindow is a hundred- or thousand-block window keyed by asset pair.
type PairWindow struct {
	Pair  AssetPair   `json:"pair"`
	Queue BucketQueue `json:"queue"`
}
