package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

const dateTimeLayout = "2006-01-02 15:04"

func printSportTypes(w io.Writer, types []*domain.SportType) {
	for _, st := range types {
		fmt.Fprintf(w, "%d %s\n", st.ID, st.Name)
		for _, sub := range st.SubTypes.All() {
			fmt.Fprintf(w, "  subtype %d %s\n", sub.ID, sub.Name)
		}
		for _, eq := range st.Equipment.All() {
			line := fmt.Sprintf("  equipment %d %s", eq.ID, eq.Name)
			if eq.NotInUse {
				line += " (not in use)"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func printResult(w io.Writer, result *commands.FilterEntriesResult) {
	if result.Len() == 0 {
		fmt.Fprintf(w, "No %ss found\n", result.Kind)
		return
	}
	for _, e := range result.Exercises {
		printExercise(w, e)
	}
	for _, n := range result.Notes {
		printNote(w, n)
	}
	for _, wt := range result.Weights {
		printWeight(w, wt)
	}
}

func printExercise(w io.Writer, e *domain.Exercise) {
	parts := []string{
		fmt.Sprintf("[%d]", e.ID),
		e.DateTime.Format(dateTimeLayout),
		e.SportType.Name + "/" + e.SportSubType.Name,
		e.Intensity.String(),
		(time.Duration(e.Duration) * time.Second).String(),
		fmt.Sprintf("%.2f km", e.Distance),
	}
	if e.Equipment != nil {
		parts = append(parts, "["+e.Equipment.Name+"]")
	}
	if e.Comment != "" {
		parts = append(parts, e.Comment)
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

func printNote(w io.Writer, n *domain.Note) {
	prefix := fmt.Sprintf("[%d]  %s", n.ID, n.DateTime.Format(dateTimeLayout))
	if n.SportType != nil {
		prefix += "  (" + n.SportType.Name + ")"
	}
	fmt.Fprintf(w, "%s  %s\n", prefix, n.Text)
}

func printWeight(w io.Writer, wt *domain.Weight) {
	line := fmt.Sprintf("[%d]  %s  %.1f kg", wt.ID, wt.DateTime.Format(dateTimeLayout), wt.Value)
	if wt.Comment != "" {
		line += "  " + wt.Comment
	}
	fmt.Fprintln(w, line)
}

func printStatistics(w io.Writer, s *commands.Statistics) {
	if s.Count == 0 {
		fmt.Fprintln(w, "No exercises found")
		return
	}
	fmt.Fprintf(w, "Exercises:      %d\n", s.Count)
	fmt.Fprintf(w, "Distance:       %.2f km total, %.2f avg, %.2f min, %.2f max\n",
		s.TotalDistance, s.AvgDistance, s.MinDistance, s.MaxDistance)
	fmt.Fprintf(w, "Duration:       %s total, %s avg\n", s.TotalDuration, s.AvgDuration)
	fmt.Fprintf(w, "Average speed:  %.1f km/h\n", s.AvgSpeed)
	if s.AvgHeartRate > 0 {
		fmt.Fprintf(w, "Average HR:     %d bpm\n", s.AvgHeartRate)
	}
	fmt.Fprintf(w, "Ascent:         %d m\n", s.TotalAscent)
	fmt.Fprintf(w, "Calories:       %d kcal\n", s.TotalCalories)
	for _, st := range s.BySportType {
		fmt.Fprintf(w, "  %-12s %3d  %8.2f km  %s\n", st.SportType.Name, st.Count, st.Distance, st.Duration)
	}
}
