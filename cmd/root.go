package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/julienpequegnot/curator/internal/config"
	"github.com/julienpequegnot/curator/internal/logging"
	"github.com/julienpequegnot/curator/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Collect Cursor tips and rewrite them as social posts",
	Long: `Curator keeps a local library of short Cursor tips, notes and quotes,
and rewrites any entry as a post for xiaohongshu, zhihu or a WeChat
official account (gzh).

Workflow: add → list → generate`,
	PersistentPreRunE: setup,
}

var (
	verbose bool
	logger  = zap.NewNop()
)

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store and index activity to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads .env from the working directory so CURATOR_HOME can be set per
// project, then builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	logger = logging.New(verbose)
	return nil
}

func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, store.New(cfg.StorePath(), store.WithLogger(logger)), nil
}

// truncate cuts s to max characters for display.
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
