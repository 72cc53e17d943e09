// Command lawctl runs law matches and maintenance tasks from the shell.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"virtual-lawyer/config"
	"virtual-lawyer/repository"
	"virtual-lawyer/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFile string
	timeout  time.Duration
	verbose  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lawctl",
	Short: "Match case descriptions against the law table and manage its data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if seedFile != "" {
			cfg.SeedFile = seedFile
		}

		if verbose {
			logger, err = cfg.NewLogger()
			if err != nil {
				return err
			}
		} else {
			logger = zap.NewNop()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed-file", "", "YAML seed file (default: bundled data, or SEED_FILE)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(matchCmd, seedCmd, exportCmd, userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext bounds a command by --timeout
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func openDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := repository.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := repository.CreateSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func loadSeed() (*seed.Data, error) {
	if cfg == nil || cfg.SeedFile == "" {
		return seed.Default(), nil
	}
	return seed.Load(cfg.SeedFile)
}
