package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/curator/internal/tags"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show tag usage",
	Long:  `Counts how many snippets carry each tag, most used first.`,
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

var tagsLimit int

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().IntVarP(&tagsLimit, "limit", "l", 20, "Maximum tags to show")
}

func runTags(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, st, err := openStore()
	if err != nil {
		return err
	}

	records, err := st.List("")
	if err != nil {
		return err
	}

	counts := tags.Summarize(records)
	if len(counts) == 0 {
		fmt.Fprintln(out, "No tags found.")
		return nil
	}
	if tagsLimit > 0 && len(counts) > tagsLimit {
		counts = counts[:tagsLimit]
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	fmt.Fprintf(out, "\n%s\n\n", titleStyle.Render("TAGS"))

	maxCount := counts[0].Records
	for i, c := range counts {
		bar := strings.Repeat("█", c.Records*20/maxCount)
		fmt.Fprintf(out, "%2d. %-20s %s %d (%d published)\n",
			i+1,
			c.Tag,
			barStyle.Render(bar),
			c.Records,
			c.Published)
	}

	fmt.Fprintln(out)
	return nil
}
