package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"sportlog/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [sporttypes|exercises|notes|weights]",
	Short: "List logbook contents",
	Long: `List sport types or all entries of one kind, oldest first.

Examples:
  sportlog-cli list sporttypes
  sportlog-cli list exercises
  sportlog-cli list weights`,
}

var listSportTypesCmd = &cobra.Command{
	Use:   "sporttypes",
	Short: "List sport types with their subtypes and equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := GetBook().SportTypes.All()
		if len(types) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sport types defined")
			return nil
		}
		printSportTypes(cmd.OutOrStdout(), types)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List all exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range byDate(GetBook().Exercises.All()) {
			printExercise(cmd.OutOrStdout(), e)
		}
		return nil
	},
}

var listNotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List all notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, n := range byDate(GetBook().Notes.All()) {
			printNote(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var listWeightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "List all weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, w := range byDate(GetBook().Weights.All()) {
			printWeight(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func byDate[T domain.Entry](entries []T) []T {
	slices.SortStableFunc(entries, func(a, b T) int {
		return a.GetDateTime().Compare(b.GetDateTime())
	})
	return entries
}

func init() {
	listCmd.AddCommand(listSportTypesCmd)
	listCmd.AddCommand(listExercisesCmd)
	listCmd.AddCommand(listNotesCmd)
	listCmd.AddCommand(listWeightsCmd)
	rootCmd.AddCommand(listCmd)
}
