package types

// Weight is the execution cost reported to the host, in gas units.
type Weight = uint64

// WeightInfo prices the oracle's work for the host's cost accounting.
type WeightInfo interface {
	// OnInitialize is the cost of one block rollup over numPairs tracked pairs.
	OnInitialize(numPairs uint32) Weight
	// OnTrade is the cost of folding one trade into the accumulator.
	OnTrade() Weight
	// OnPoolCreated is the cost of registering a pair.
	OnPoolCreated() Weight
}

// Default weight coefficients.
const (
	WeightOnInitializeBase    Weight = 2_000
	WeightOnInitializePerPair Weight = 1_500
	WeightOnTrade             Weight = 1_000
	WeightOnPoolCreated       Weight = 1_200
)

// DefaultWeights is linear in the number of tracked pairs.
type DefaultWeights struct{}

var _ WeightInfo = DefaultWeights{}

func (DefaultWeights) OnInitialize(numPairs uint32) Weight {
	return WeightOnInitializeBase + WeightOnInitializePerPair*Weight(numPairs)
}

func (DefaultWeights) OnTrade() Weight { return WeightOnTrade }

func (DefaultWeights) OnPoolCreated() Weight { return WeightOnPoolCreated }
