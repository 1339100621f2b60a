package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <exercise|note|weight> <id>",
	Short: "Delete an entry",
	Long: `Delete an exercise, note or weight entry by ID.

Warning: This operation cannot be undone.

Examples:
  sportlog-cli delete exercise 12
  sportlog-cli delete weight 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := domain.ParseEntryKind(args[0])
		if err != nil {
			return &application.ValidationError{Field: "kind", Message: err.Error()}
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}

		result, err := commands.NewDeleteEntryCommand(GetBook(), kind, id).Execute(cmd.Context())
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

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", application.ErrInvalidID, s)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
