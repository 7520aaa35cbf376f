package cmd

import (
	"fmt"

	"github.com/julienpequegnot/curator/internal/tags"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title> <content> <source> [tags]",
	Short: "Add a content snippet",
	Long: `Store a snippet together with where it came from.
Tags are comma separated, e.g. "tips,shortcut".

Fewer than three arguments is a usage error: nothing is written and the
command exits with status 1, like every other failing command.`,
	Example: `  curator add "Cursor 快捷键" "Cmd+K 打开 AI 聊天..." "Twitter" "tips,shortcut"`,
	Args:    cobra.RangeArgs(3, 4),
	RunE:    runAdd,
}

var addURL string

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "Link to the original post")
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, st, err := openStore()
	if err != nil {
		return err
	}

	var tagList []string
	if len(args) > 3 {
		tagList = tags.Parse(args[3])
	}

	rec, total, err := st.Add(args[0], args[1], args[2], addURL, tagList)
	if err != nil {
		return fmt.Errorf("failed to add content: %w", err)
	}

	fmt.Fprintf(out, "Added: %s (ID: %d)\n", rec.Title, rec.ID)
	fmt.Fprintf(out, "Saved %d records to %s\n", total, st.Path())

	return nil
}
