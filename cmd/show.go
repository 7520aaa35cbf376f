package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/curator/internal/tags"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored snippet",
	Long:  `Display the full content and metadata of one snippet.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	_, st, err := openStore()
	if err != nil {
		return err
	}

	r, err := st.Get(id)
	if err != nil {
		return err
	}

	// Styles
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, titleStyle.Render(r.Title))
	fmt.Fprintln(out, divider)

	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("ID:"), r.ID)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Source:"), valueStyle.Render(r.Source))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Status:"), valueStyle.Render(string(r.Status)))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Added:"), valueStyle.Render(r.DateAdded.Format("2006-01-02 15:04")))
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Tags:"), valueStyle.Render(tags.Join(r.Tags)))
	}
	if r.URL != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("URL:"), urlStyle.Render(r.URL))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Content)

	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid content ID: %s", s)
	}
	return id, nil
}
