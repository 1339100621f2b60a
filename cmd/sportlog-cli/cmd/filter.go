package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

// filterFlags holds the filter options shared by filter and stats
type filterFlags struct {
	spec application.FilterSpec
}

func (f *filterFlags) register(cmd *cobra.Command, withKind bool) {
	flags := cmd.Flags()
	if withKind {
		flags.StringVarP(&f.spec.Kind, "kind", "k", "exercise", "entry kind: exercise, note or weight")
	}
	flags.StringVar(&f.spec.From, "from", "", "first day, YYYY-MM-DD (default: start of this month)")
	flags.StringVar(&f.spec.To, "to", "", "last day, YYYY-MM-DD (default: end of this month)")
	flags.IntVar(&f.spec.SportTypeID, "sport-type", 0, "sport type ID")
	flags.IntVar(&f.spec.SubTypeID, "subtype", 0, "sport subtype ID (requires --sport-type)")
	flags.IntVar(&f.spec.EquipmentID, "equipment", 0, "equipment ID; without --sport-type it matches any sport type")
	flags.StringVar(&f.spec.Intensity, "intensity", "", "intensity: minimum, low, normal, high, maximum or intervals")
	flags.StringVarP(&f.spec.Comment, "comment", "c", "", "comment substring or pattern")
	flags.BoolVarP(&f.spec.Regex, "regex", "r", false, "treat --comment as a regular expression")
}

func (f *filterFlags) criteria() (*domain.FilterCriteria, error) {
	return f.spec.Criteria(GetBook().SportTypes, time.Now())
}

var filterOpts filterFlags

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show entries matching a filter",
	Long: `Show the entries of one kind that match the given filter, newest first.
Without date flags the current month is shown.

Examples:
  sportlog-cli filter --from 2024-01-01 --to 2024-03-31
  sportlog-cli filter --sport-type 1 --intensity high
  sportlog-cli filter --kind note --comment "knee|ankle" --regex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := filterOpts.criteria()
		if err != nil {
			return err
		}

		result, err := commands.NewFilterEntriesCommand(GetBook(), criteria).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

var statsOpts filterFlags

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show exercise statistics",
	Long: `Summarize the exercises matching the given filter: distance, duration,
speed, heart rate, ascent and calories, with a breakdown per sport type.

Examples:
  sportlog-cli stats
  sportlog-cli stats --from 2024-01-01 --to 2024-12-31 --sport-type 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := statsOpts.criteria()
		if err != nil {
			return err
		}

		stats, err := commands.NewStatisticsCommand(GetBook(), criteria).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printStatistics(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	filterOpts.register(filterCmd, true)
	statsOpts.register(statsCmd, false)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
}
