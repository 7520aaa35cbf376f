package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/curator/internal/record"
	"github.com/julienpequegnot/curator/internal/tags"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored content",
	Long:  `List the most recently added snippets, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listStatus string
	listTop    int
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Only show raw, processed or published content")
	listCmd.Flags().IntVarP(&listTop, "top", "n", 0, "Number of records to show (0 = config list.limit)")
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	var status record.Status
	if listStatus != "" {
		status, err = record.ParseStatus(listStatus)
		if err != nil {
			return err
		}
	}

	records, err := st.List(status)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No content found. Add some with 'curator add'.")
		return nil
	}

	limit := listTop
	if limit <= 0 {
		limit = cfg.List.Limit
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	fmt.Fprintf(out, "%d records\n\n", len(records))

	// Header
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(" %-4s  %-9s  %-15s  %s", "#", "STATUS", "SOURCE", "TITLE")))
	fmt.Fprintln(out, strings.Repeat("─", 90))

	for _, r := range record.Tail(records, limit) {
		fmt.Fprintf(out, " %s  %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", r.ID)),
			statusStyle.Render(fmt.Sprintf("%-9s", r.Status)),
			sourceStyle.Render(fmt.Sprintf("%-15s", truncate(r.Source, 15))),
			truncate(r.Title, cfg.List.TitleWidth),
		)
		if len(r.Tags) > 0 {
			fmt.Fprintf(out, "       %s\n", tagStyle.Render(tags.Join(r.Tags)))
		}
	}

	return nil
}
