package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagScript    = "script"
	flagBlocks    = "blocks"
	flagPrintHash = "print-hash"
	flagQuiet     = "quiet"
)

// ReplayCmd replays a trade script and prints the resulting windows.
func ReplayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a YAML trade script block by block",
		Example: `oraclesim replay --script trades.yaml
oraclesim replay --script trades.yaml --db goleveldb --blocks 1200 --print-hash`,
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

			script, err := LoadScript(v.GetString(flagScript))
			if err != nil {
				return err
			}

			stop, err := startMetricsServer(cfg.MetricsAddr, logger)
			if err != nil {
				return err
			}
			defer stop()

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			sim, err := NewSimulator(db, logger)
			if err != nil {
				return err
			}
			if err := sim.Replay(script, v.GetInt64(flagBlocks)); err != nil {
				return err
			}

			if v.GetBool(flagPrintHash) {
				fmt.Fprintln(cmd.OutOrStdout(), sim.AppHash().String())
			}
			if v.GetBool(flagQuiet) {
				return nil
			}
			return printSnapshot(cmd, sim)
		},
	}

	cmd.Flags().String(flagScript, "", "path of the YAML trade script")
	cmd.Flags().Int64(flagBlocks, 0, "run empty blocks until this height when the script ends earlier")
	cmd.Flags().Bool(flagPrintHash, false, "print the final app hash")
	cmd.Flags().Bool(flagQuiet, false, "do not print the snapshot")
	_ = cmd.MarkFlagRequired(flagScript)

	return cmd
}
