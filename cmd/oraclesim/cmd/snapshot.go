package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

const (
	flagPair = "pair"
	flagTier = "tier"
)

// SnapshotCmd prints the windows stored in an existing goleveldb home.
func SnapshotCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the oracle windows of a replayed home",
		Long: `Print the oracle windows of a home written by "replay --db goleveldb".
With --pair and --tier only the tier average of that pair is printed.`,
		Example: `oraclesim snapshot --db goleveldb --home ./sim
oraclesim snapshot --db goleveldb --pair 1/2 --tier hundred`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			sim, err := NewSimulator(db, logger)
			if err != nil {
				return err
			}
			if sim.NextHeight() == 0 {
				return fmt.Errorf("no committed blocks in %s", cfg.Home)
			}

			pairArg := v.GetString(flagPair)
			if pairArg == "" {
				return printSnapshot(cmd, sim)
			}

			pair, err := types.ParseAssetPair(pairArg)
			if err != nil {
				return err
			}
			tier, err := types.ParseTier(v.GetString(flagTier))
			if err != nil {
				return err
			}
			price, found, err := sim.OraclePrice(pair, tier)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no %s window for pair %s", tier, pair)
			}
			return printJSON(cmd, price)
		},
	}

	cmd.Flags().String(flagPair, "", "asset pair as <asset>/<asset>")
	cmd.Flags().String(flagTier, types.TierTen.String(), "tier: ten, hundred or thousand")

	return cmd
}

func printSnapshot(cmd *cobra.Command, sim *Simulator) error {
	snapshot, err := sim.Snapshot()
	if err != nil {
		return err
	}
	return printJSON(cmd, snapshot)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := types.ModuleCdc.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
