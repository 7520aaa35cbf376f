package cmd

import (
	"fmt"

	"github.com/julienpequegnot/curator/internal/config"
	"github.com/julienpequegnot/curator/internal/render"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List post styles",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for _, s := range render.Styles() {
		marker := ""
		if string(s) == cfg.Render.DefaultStyle {
			marker = " (default)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", s, marker)
	}
	return nil
}
