package cmd

import (
	"fmt"
	"strings"

	"github.com/julienpequegnot/curator/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate <id> [style]",
	Short: "Rewrite a snippet as a post",
	Long: `Render a snippet into a post template and save it as
article_<id>_<style>.md in the data directory.

Styles: xiaohongshu (default), zhihu, gzh. Unknown styles use the
xiaohongshu template.`,
	Example: `  curator generate 1
  curator generate 1 zhihu`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	style := cfg.Render.DefaultStyle
	if len(args) > 1 {
		style = args[1]
	}
	if style == "" {
		style = string(render.DefaultStyle)
	}
	if _, ok := render.ParseStyle(style); !ok {
		logger.Debug("unknown style, using default template", zap.String("style", style))
	}

	r, err := st.Get(id)
	if err != nil {
		return err
	}

	renderer := render.New(cfg.Render.BodyLimit)
	path, article, err := renderer.Write(st.Dir(), *r, style)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerated %s article:\n\n", style)
	fmt.Fprintln(out, article)
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintf(out, "Saved to: %s\n", path)

	return nil
}
