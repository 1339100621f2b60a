package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

var commentCmd = &cobra.Command{
	Use:   "comment <exercise|note|weight> <id> <text>",
	Short: "Replace the comment of an entry",
	Long: `Replace the comment of an exercise or weight entry, or the text of a note.

Examples:
  sportlog-cli comment exercise 12 "Headwind all the way"
  sportlog-cli comment weight 3 ""`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := domain.ParseEntryKind(args[0])
		if err != nil {
			return &application.ValidationError{Field: "kind", Message: err.Error()}
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}

		result, err := commands.NewSetCommentCommand(GetBook(), kind, id, args[2]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if err := save(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
}
