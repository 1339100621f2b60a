package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

// RegisterReadTools adds all read-only logbook tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, session *Session) {
	s.AddTool(listSportTypesTool(), listSportTypesHandler(session))
	s.AddTool(filterEntriesTool(), filterEntriesHandler(session))
	s.AddTool(statisticsTool(), statisticsHandler(session))
}

// --- list_sport_types ---

func listSportTypesTool() mcp.Tool {
	return mcp.NewTool("list_sport_types",
		mcp.WithDescription("List sport types with their subtypes and equipment, including the IDs used by the filter tools."),
	)
}

func listSportTypesHandler(session *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var out string
		_ = session.with(func(book *domain.Logbook) error {
			out = formatSportTypes(book.SportTypes.All())
			return nil
		})
		if out == "" {
			return mcp.NewToolResultText("No sport types."), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- filter_entries ---

func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("from",
			mcp.Description("First day, YYYY-MM-DD. Defaults to the first day of the current month."),
		),
		mcp.WithString("to",
			mcp.Description("Last day, YYYY-MM-DD. Defaults to the last day of the current month."),
		),
		mcp.WithNumber("sport_type_id",
			mcp.Description("Only exercises/notes of this sport type (see list_sport_types)"),
		),
		mcp.WithNumber("subtype_id",
			mcp.Description("Only exercises of this subtype; requires sport_type_id"),
		),
		mcp.WithNumber("equipment_id",
			mcp.Description("Only exercises/notes using this equipment; without sport_type_id it matches the equipment ID in any sport type"),
		),
		mcp.WithString("intensity",
			mcp.Description("Only exercises of this intensity"),
			mcp.Enum("minimum", "low", "normal", "high", "maximum", "intervals"),
		),
		mcp.WithString("comment",
			mcp.Description("Words that must all appear in the comment (case-insensitive), or a regular expression when regex is true"),
		),
		mcp.WithBoolean("regex",
			mcp.Description("Treat comment as a regular expression"),
		),
	}
}

func filterEntriesTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Select exercises, notes or weights by date range, sport type, intensity and comment. Results are newest first."),
		mcp.WithString("kind",
			mcp.Description("Entry kind to select"),
			mcp.Enum("exercise", "note", "weight"),
		),
	}, filterOptions()...)
	return mcp.NewTool("filter_entries", opts...)
}

func filterEntriesHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		spec := filterSpec(req)
		out, err := session.render("filter_entries", spec, func(book *domain.Logbook) (string, error) {
			criteria, err := spec.Criteria(book.SportTypes, time.Now())
			if err != nil {
				return "", err
			}
			result, err := commands.NewFilterEntriesCommand(book, criteria).Execute(ctx)
			if err != nil {
				return "", err
			}
			return formatResult(result), nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- statistics ---

func statisticsTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Summarize the exercises matching a filter: count, distance, duration, speed, heart rate and per sport type totals."),
	}, filterOptions()...)
	return mcp.NewTool("statistics", opts...)
}

func statisticsHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		spec := filterSpec(req)
		out, err := session.render("statistics", spec, func(book *domain.Logbook) (string, error) {
			criteria, err := spec.Criteria(book.SportTypes, time.Now())
			if err != nil {
				return "", err
			}
			stats, err := commands.NewStatisticsCommand(book, criteria).Execute(ctx)
			if err != nil {
				return "", err
			}
			return formatStatistics(stats), nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- helpers ---

func filterSpec(req mcp.CallToolRequest) application.FilterSpec {
	return application.FilterSpec{
		Kind:        req.GetString("kind", ""),
		From:        req.GetString("from", ""),
		To:          req.GetString("to", ""),
		SportTypeID: req.GetInt("sport_type_id", 0),
		SubTypeID:   req.GetInt("subtype_id", 0),
		EquipmentID: req.GetInt("equipment_id", 0),
		Intensity:   req.GetString("intensity", ""),
		Comment:     req.GetString("comment", ""),
		Regex:       req.GetBool("regex", false),
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) string {
	if len(entities) == 0 {
		return "No results."
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatSportTypes(types []*domain.SportType) string {
	var sb strings.Builder
	for _, st := range types {
		fmt.Fprintf(&sb, "%d  %s\n", st.ID, st.Name)
		for _, sub := range st.SubTypes.All() {
			fmt.Fprintf(&sb, "  subtype %d  %s\n", sub.ID, sub.Name)
		}
		for _, eq := range st.Equipment.All() {
			suffix := ""
			if eq.NotInUse {
				suffix = " (not in use)"
			}
			fmt.Fprintf(&sb, "  equipment %d  %s%s\n", eq.ID, eq.Name, suffix)
		}
	}
	return sb.String()
}

func formatResult(result *commands.FilterEntriesResult) string {
	switch result.Kind {
	case domain.EntryKindNote:
		return formatEntities(result.Notes, formatNote)
	case domain.EntryKindWeight:
		return formatEntities(result.Weights, formatWeight)
	default:
		return formatEntities(result.Exercises, formatExercise)
	}
}

func formatExercise(e *domain.Exercise) string {
	line := fmt.Sprintf("%d  %s  %s/%s  %s  %s  %.2f km",
		e.ID, e.DateTime.Format("2006-01-02 15:04"), e.SportType.Name, e.SportSubType.Name,
		e.Intensity, time.Duration(e.Duration)*time.Second, e.Distance)
	if e.Equipment != nil {
		line += "  [" + e.Equipment.Name + "]"
	}
	if e.Comment != "" {
		line += "  " + e.Comment
	}
	return line
}

func formatNote(n *domain.Note) string {
	line := fmt.Sprintf("%d  %s", n.ID, n.DateTime.Format("2006-01-02 15:04"))
	if n.SportType != nil {
		line += "  " + n.SportType.Name
	}
	return line + "  " + n.Text
}

func formatWeight(w *domain.Weight) string {
	line := fmt.Sprintf("%d  %s  %.1f kg", w.ID, w.DateTime.Format("2006-01-02"), w.Value)
	if w.Comment != "" {
		line += "  " + w.Comment
	}
	return line
}

func formatStatistics(s *commands.Statistics) string {
	if s.Count == 0 {
		return "No exercises."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "exercises: %d\n", s.Count)
	fmt.Fprintf(&sb, "distance: %.2f km (avg %.2f, min %.2f, max %.2f)\n", s.TotalDistance, s.AvgDistance, s.MinDistance, s.MaxDistance)
	fmt.Fprintf(&sb, "duration: %s (avg %s)\n", s.TotalDuration, s.AvgDuration.Round(time.Second))
	fmt.Fprintf(&sb, "avg speed: %.2f km/h\n", s.AvgSpeed)
	if s.AvgHeartRate > 0 {
		fmt.Fprintf(&sb, "avg heart rate: %d bpm\n", s.AvgHeartRate)
	}
	fmt.Fprintf(&sb, "ascent: %d m, calories: %d kcal\n", s.TotalAscent, s.TotalCalories)
	for _, st := range s.BySportType {
		fmt.Fprintf(&sb, "  %s: %d exercises, %.2f km, %s\n", st.SportType.Name, st.Count, st.Distance, st.Duration)
	}
	return sb.String()
}
