package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild search index",
	Long:  `Rebuilds the full-text search index from the content store.`,
	Args:  cobra.NoArgs,
	RunE:  runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Rebuilding search index...")

	idx, closeIndex, err := openIndex()
	if err != nil {
		return err
	}
	defer closeIndex()

	if err := idx.RebuildIndex(); err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	count, err := idx.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Search index rebuilt successfully (%d records).\n", count)
	return nil
}
