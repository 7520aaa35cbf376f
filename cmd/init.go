package cmd

import (
	"fmt"

	"github.com/julienpequegnot/curator/internal/config"
	"github.com/julienpequegnot/curator/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the curator data directory",
	Long:  `Creates the data directory (CURATOR_HOME or ~/awesome-cursor-cn/data) with a default config.yaml.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st := store.New(cfg.StorePath(), store.WithLogger(logger))
	if err := st.EnsureReady(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "Created config at %s/config.yaml\n", config.Dir())
	fmt.Fprintf(out, "Content will be stored in %s\n", st.Path())

	fmt.Fprintln(out, "\nCurator initialized! Next steps:")
	fmt.Fprintln(out, `  curator add "<title>" "<content>" "<source>" ["tag1,tag2"]`)
	fmt.Fprintln(out, "  curator generate <id> [xiaohongshu|zhihu|gzh]")

	return nil
}
