package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/burrow/internal/cli"
	"github.com/aretw0/burrow/internal/config"
	"github.com/aretw0/burrow/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dotenvFile is read from the working directory when present.
const dotenvFile = ".env"

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Burrow plays Hase und Igel against a game server",
	Long: `Burrow connects to a Hase und Igel game server, keeps the latest game state and answers
every move request. Settings come from defaults, an optional YAML file (--config), a .env file,
BURROW_* environment variables and finally the flags below.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context(), logger)
		defer ctx.Cancel()

		err = cli.Play(ctx, cfg, cli.PlayOptions{Logger: logger, Stdout: cmd.OutOrStdout()})
		if err != nil && ctx.Signal() != nil {
			return nil
		}
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// -h is the host, so help only has its long form.
	rootCmd.PersistentFlags().Bool("help", false, "Help for burrow")
	addGlobalFlags(rootCmd.PersistentFlags())
	addPlayFlags(rootCmd.Flags())
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML or JSON config file")
	fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.String("log-format", "", "Log format (text, json)")
	fs.String("snapshot-dir", "", "Record game state snapshots in this directory")
	fs.String("redis-addr", "", "Record game state snapshots in this Redis server")
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringP("host", "h", config.DefaultHost, "Game server host")
	fs.IntP("port", "p", config.DefaultPort, "Game server port")
	fs.StringP("reservation", "r", "", "Reservation code for a prepared game")
	fs.String("game-type", "", "Game type to join without a reservation")
	fs.String("metrics-addr", "", "Serve /metrics, /healthz, /snapshots and /events on this address")
	fs.String("otel-endpoint", "", "OTLP/HTTP endpoint for traces")
	fs.BoolP("quiet", "q", false, "Do not print the banner")
}

// resolveConfig loads the layered configuration and applies the flags the user set explicitly.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, dotenvFile)
	if err != nil {
		return config.Config{}, err
	}

	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string, dst *string) {
		if changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	str("host", &cfg.Host)
	str("reservation", &cfg.Reservation)
	str("game-type", &cfg.GameType)
	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)
	str("metrics-addr", &cfg.MetricsAddr)
	str("snapshot-dir", &cfg.SnapshotDir)
	str("redis-addr", &cfg.Redis.Addr)
	str("otel-endpoint", &cfg.OTelEndpoint)
	if changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(level, cfg.Log.Format), nil
}
