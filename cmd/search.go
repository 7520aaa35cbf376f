package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/curator/internal/database"
	"github.com/julienpequegnot/curator/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stored content",
	Long: `Full-text search across titles, content and tags.
Query syntax follows SQLite FTS, e.g. 'composer OR agent'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "Maximum results to show")
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	query := strings.Join(args, " ")

	idx, closeIndex, err := openIndex()
	if err != nil {
		return err
	}
	defer closeIndex()

	results, err := idx.Search(query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No results found for '%s'\n", query)
		return nil
	}

	// Display results
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	snippetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	fmt.Fprintf(out, "\n%s '%s' (%d results)\n\n", titleStyle.Render("SEARCH:"), query, len(results))

	for _, r := range results {
		fmt.Fprintf(out, "%s %s\n", idStyle.Render(fmt.Sprintf("[%d]", r.RecordID)), r.Title)
		fmt.Fprintf(out, "    %s • %s\n", sourceStyle.Render(r.Source), r.Status)

		if r.Snippet != "" {
			// Clean up HTML tags from snippet
			snippet := strings.ReplaceAll(r.Snippet, "<b>", "")
			snippet = strings.ReplaceAll(snippet, "</b>", "")
			fmt.Fprintf(out, "    %s\n", snippetStyle.Render(snippet))
		}
		fmt.Fprintln(out)
	}

	return nil
}

// openIndex opens the search index and brings it in line with the store.
func openIndex() (*search.Repository, func(), error) {
	cfg, st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	records, err := st.List("")
	if err != nil {
		return nil, nil, err
	}

	if err := st.EnsureReady(); err != nil {
		return nil, nil, err
	}
	db, err := database.New(cfg.IndexPath())
	if err != nil {
		return nil, nil, err
	}

	idx := search.NewRepository(db, logger)
	if err := idx.Sync(records); err != nil {
		db.Close()
		return nil, nil, err
	}

	return idx, func() { db.Close() }, nil
}
