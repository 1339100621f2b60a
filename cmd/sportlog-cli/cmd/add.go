package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add [exercise|weight|note]",
	Short: "Add an entry",
	Long: `Add an exercise, weight or note entry to the logbook.

Examples:
  sportlog-cli add exercise --sport-type 1 --subtype 2 --duration 1h15m --distance 42.5
  sportlog-cli add exercise --sport-type 2 --subtype 1 --duration 48:30 --intensity high --avg-hr 162
  sportlog-cli add weight 72.4 --date "2024-03-01 07:30"
  sportlog-cli add note "New saddle" --sport-type 1 --equipment 2`,
}

var (
	addDate        string
	addComment     string
	addSportType   int
	addEquipmentID int
)

// exercise flags
var (
	exSportType int
	exSubType   int
	exEquipment int
	exIntensity string
	exDuration  string
	exDistance  float64
	exAvgSpeed  float64
	exAvgHR     int
	exAscent    int
	exCalories  int
	exHRMFile   string
	exComment   string
)

var addExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Add an exercise",
	Long: `Add an exercise. Sport type and subtype are required; equipment must
belong to the sport type. The average speed is computed from distance and
duration when not given and the sport type records distance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateTime(addDate, time.Now())
		if err != nil {
			return err
		}
		intensity, err := domain.ParseIntensity(exIntensity)
		if err != nil {
			return &application.ValidationError{Field: "intensity", Message: err.Error()}
		}
		duration, err := parseDuration(exDuration)
		if err != nil {
			return err
		}

		exercise := &domain.Exercise{
			DateTime:     date,
			Intensity:    intensity,
			Duration:     duration,
			Distance:     exDistance,
			AvgSpeed:     exAvgSpeed,
			AvgHeartRate: exAvgHR,
			Ascent:       exAscent,
			Calories:     exCalories,
			HRMFile:      strings.TrimSpace(exHRMFile),
			Comment:      exComment,
		}
		// placeholders, bound to the graph by the command
		if exSportType != 0 {
			exercise.SportType = &domain.SportType{ID: exSportType}
		}
		if exSubType != 0 {
			exercise.SportSubType = &domain.SportSubType{ID: exSubType}
		}
		if exEquipment != 0 {
			exercise.Equipment = &domain.Equipment{ID: exEquipment}
		}

		result, err := commands.NewSaveExerciseCommand(GetBook(), exercise).Execute(cmd.Context())
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

var addWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Add a body weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &application.ValidationError{Field: "value", Message: fmt.Sprintf("invalid weight %q", args[0])}
		}
		date, err := parseDateTime(addDate, time.Now())
		if err != nil {
			return err
		}

		weight := &domain.Weight{DateTime: date, Value: value, Comment: addComment}
		result, err := commands.NewSaveWeightCommand(GetBook(), weight).Execute(cmd.Context())
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

var addNoteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateTime(addDate, time.Now())
		if err != nil {
			return err
		}

		note := &domain.Note{DateTime: date, Text: args[0]}
		if addSportType != 0 {
			note.SportType = &domain.SportType{ID: addSportType}
			if addEquipmentID != 0 {
				note.Equipment = &domain.Equipment{ID: addEquipmentID}
			}
		} else if addEquipmentID != 0 {
			return &application.ValidationError{Field: "equipment", Message: "--equipment requires --sport-type"}
		}

		result, err := commands.NewSaveNoteCommand(GetBook(), note).Execute(cmd.Context())
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

// parseDateTime accepts "YYYY-MM-DD" or "YYYY-MM-DD HH:MM" in local time
func parseDateTime(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback.Truncate(time.Minute), nil
	}
	for _, layout := range []string{dateTimeLayout, time.DateOnly} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &application.ValidationError{
		Field:   "date",
		Message: fmt.Sprintf("invalid date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", value),
	}
}

// parseDuration accepts a Go duration ("1h15m") or H:MM:SS / MM:SS and
// returns whole seconds
func parseDuration(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return int(d / time.Second), nil
	}

	invalid := &application.ValidationError{
		Field:   "duration",
		Message: fmt.Sprintf("invalid duration %q (want e.g. 1h15m, 1:15:00 or 48:30)", value),
	}
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, invalid
	}
	seconds := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || (i > 0 && n >= 60) {
			return 0, invalid
		}
		seconds = seconds*60 + n
	}
	return seconds, nil
}

func init() {
	f := addExerciseCmd.Flags()
	f.IntVar(&exSportType, "sport-type", 0, "sport type ID")
	f.IntVar(&exSubType, "subtype", 0, "sport subtype ID")
	f.IntVar(&exEquipment, "equipment", 0, "equipment ID of the sport type")
	f.StringVar(&exIntensity, "intensity", domain.IntensityNormal.String(), "minimum|low|normal|high|maximum|intervals")
	f.StringVar(&exDuration, "duration", "", "duration, e.g. 1h15m or 1:15:00")
	f.Float64Var(&exDistance, "distance", 0, "distance in km")
	f.Float64Var(&exAvgSpeed, "avg-speed", 0, "average speed in km/h (default: computed)")
	f.IntVar(&exAvgHR, "avg-hr", 0, "average heart rate in bpm")
	f.IntVar(&exAscent, "ascent", 0, "ascent in m")
	f.IntVar(&exCalories, "calories", 0, "energy in kcal")
	f.StringVar(&exHRMFile, "hrm", "", "heart-rate monitor file")
	f.StringVarP(&exComment, "comment", "c", "", "comment")

	addCmd.PersistentFlags().StringVar(&addDate, "date", "", "entry date, YYYY-MM-DD or \"YYYY-MM-DD HH:MM\" (default: now)")
	addWeightCmd.Flags().StringVarP(&addComment, "comment", "c", "", "comment")
	addNoteCmd.Flags().IntVar(&addSportType, "sport-type", 0, "sport type ID")
	addNoteCmd.Flags().IntVar(&addEquipmentID, "equipment", 0, "equipment ID (requires --sport-type)")

	addCmd.AddCommand(addExerciseCmd)
	addCmd.AddCommand(addWeightCmd)
	addCmd.AddCommand(addNoteCmd)
	rootCmd.AddCommand(addCmd)
}
