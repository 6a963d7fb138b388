package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ORACLESIM"

	flagHome        = "home"
	flagConfig      = "config"
	flagDB          = "db"
	flagLogLevel    = "log-level"
	flagMetricsAddr = "metrics-addr"
)

// DefaultHome is where goleveldb state and the config file live by default.
var DefaultHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".oraclesim"
	}
	return filepath.Join(userHome, ".oraclesim")
}()

// Config is the resolved configuration shared by every command. Values come
// from flags, then ORACLESIM_* environment variables, then the config file.
type Config struct {
	Home        string `mapstructure:"home"`
	DB          string `mapstructure:"db"`
	LogLevel    string `mapstructure:"log-level"`
	MetricsAddr string `mapstructure:"metrics-addr"`
}

// NewRootCmd creates the oraclesim root command.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "oraclesim",
		Short: "Replay pool activity through the price oracle",
		Long: `oraclesim drives the price oracle module against a committed multistore.
It replays a YAML script of pool creations and trades block by block and
prints the ten, hundred and thousand block windows of every tracked pair.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd.Flags())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagHome, DefaultHome, "directory for goleveldb state")
	pf.String(flagConfig, "", "config file (default $HOME/.oraclesim/config.yaml when present)")
	pf.String(flagDB, string(dbm.MemDBBackend), "state backend: memdb or goleveldb")
	pf.String(flagLogLevel, zerolog.InfoLevel.String(), "log level: trace, debug, info, warn, error")
	pf.String(flagMetricsAddr, "", "serve prometheus metrics on this address while running, e.g. :26660")

	rootCmd.AddCommand(
		ReplayCmd(v),
		SnapshotCmd(v),
	)
	return rootCmd
}

func initConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(flagConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString(flagHome))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	switch dbm.BackendType(cfg.DB) {
	case dbm.MemDBBackend, dbm.GoLevelDBBackend:
	default:
		return Config{}, fmt.Errorf("unsupported db backend %q", cfg.DB)
	}
	return cfg, nil
}

// NewLogger builds the module logger at the given zerolog level.
func NewLogger(w io.Writer, level string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewLogger(w, log.LevelOption(lvl)), nil
}

func openDB(cfg Config) (dbm.DB, error) {
	dir := filepath.Join(cfg.Home, "data")
	if dbm.BackendType(cfg.DB) == dbm.GoLevelDBBackend {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return dbm.NewDB("oraclesim", dbm.BackendType(cfg.DB), dir)
}
