package cmd

import (
	"fmt"
	"os"

	sdkmath "cosmossdk.io/math"
	"gopkg.in/yaml.v3"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

// Script is a replayable sequence of pool activity.
//
//	blocks:
//	  - height: 0
//	    pools:
//	      - {asset_a: 1, asset_b: 2}
//	  - height: 1
//	    trades:
//	      - {asset_in: 1, asset_out: 2, price: "2.0", amount: "100", liquidity: "50"}
//	    swaps:
//	      - {asset_in: 2, asset_out: 1, amount_in: "400", amount_out: "100", liquidity: "1000"}
type Script struct {
	Blocks []ScriptBlock `yaml:"blocks"`
}

// ScriptBlock holds the events applied at one height, after the rollup of
// that height has run.
type ScriptBlock struct {
	Height int64       `yaml:"height"`
	Pools  []PoolSpec  `yaml:"pools"`
	Trades []TradeSpec `yaml:"trades"`
	Swaps  []SwapSpec  `yaml:"swaps"`
}

type PoolSpec struct {
	AssetA types.AssetID `yaml:"asset_a"`
	AssetB types.AssetID `yaml:"asset_b"`
}

// TradeSpec is an already priced trade observation.
type TradeSpec struct {
	AssetIn   types.AssetID `yaml:"asset_in"`
	AssetOut  types.AssetID `yaml:"asset_out"`
	Price     string        `yaml:"price"`
	Amount    string        `yaml:"amount"`
	Liquidity string        `yaml:"liquidity"`
}

// SwapSpec is a raw swap that the oracle prices itself.
type SwapSpec struct {
	AssetIn   types.AssetID `yaml:"asset_in"`
	AssetOut  types.AssetID `yaml:"asset_out"`
	AmountIn  string        `yaml:"amount_in"`
	AmountOut string        `yaml:"amount_out"`
	Liquidity string        `yaml:"liquidity"`
}

// LoadScript reads and validates a YAML script from disk.
func LoadScript(path string) (Script, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(bz)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(bz []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(bz, &script); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return Script{}, err
	}
	return script, nil
}

// Validate checks that heights are strictly increasing and that every
// number parses. Values the oracle would reject, like a zero price, are
// kept so that the replay exercises the filtering.
func (s Script) Validate() error {
	prev := int64(-1)
	for i, block := range s.Blocks {
		if block.Height <= prev {
			return fmt.Errorf("block %d: height %d is not above %d", i, block.Height, prev)
		}
		prev = block.Height

		for j, trade := range block.Trades {
			if _, err := trade.Entry(); err != nil {
				return fmt.Errorf("block %d trade %d: %w", block.Height, j, err)
			}
		}
		for j, swap := range block.Swaps {
			if _, _, err := swap.Transfer(); err != nil {
				return fmt.Errorf("block %d swap %d: %w", block.Height, j, err)
			}
		}
	}
	return nil
}

// LastHeight returns the highest scripted height, or -1 for an empty script.
func (s Script) LastHeight() int64 {
	if len(s.Blocks) == 0 {
		return -1
	}
	return s.Blocks[len(s.Blocks)-1].Height
}

func (p PoolSpec) Pair() types.AssetPair {
	return types.NewAssetPair(p.AssetA, p.AssetB)
}

func (t TradeSpec) Pair() types.AssetPair {
	return types.NewAssetPair(t.AssetIn, t.AssetOut)
}

// Entry converts the trade into an oracle observation.
func (t TradeSpec) Entry() (types.PriceEntry, error) {
	price, err := sdkmath.LegacyNewDecFromStr(t.Price)
	if err != nil {
		return types.PriceEntry{}, fmt.Errorf("price %q: %w", t.Price, err)
	}
	amount, err := parseInt("amount", t.Amount)
	if err != nil {
		return types.PriceEntry{}, err
	}
	liquidity, err := parseInt("liquidity", t.Liquidity)
	if err != nil {
		return types.PriceEntry{}, err
	}
	return types.NewPriceEntry(price, amount, liquidity), nil
}

// Transfer converts the swap into a pool transfer and its liquidity.
func (s SwapSpec) Transfer() (types.AMMTransfer, sdkmath.Int, error) {
	amountIn, err := parseInt("amount_in", s.AmountIn)
	if err != nil {
		return types.AMMTransfer{}, sdkmath.Int{}, err
	}
	amountOut, err := parseInt("amount_out", s.AmountOut)
	if err != nil {
		return types.AMMTransfer{}, sdkmath.Int{}, err
	}
	liquidity, err := parseInt("liquidity", s.Liquidity)
	if err != nil {
		return types.AMMTransfer{}, sdkmath.Int{}, err
	}
	return types.AMMTransfer{
		Pair:      types.NewAssetPair(s.AssetIn, s.AssetOut),
		AmountIn:  amountIn,
		AmountOut: amountOut,
	}, liquidity, nil
}

func parseInt(field, value string) (sdkmath.Int, error) {
	v, ok := sdkmath.NewIntFromString(value)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("%s %q is not an integer", field, value)
	}
	return v, nil
}
