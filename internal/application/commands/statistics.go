package commands

import (
	"context"
	"fmt"
	"time"

	"sportlog/internal/domain"
)

// SportTypeStatistics holds the totals of one sport type
type SportTypeStatistics struct {
	SportType *domain.SportType
	Count     int
	Distance  float64
	Duration  time.Duration
}

// Statistics summarizes a set of exercises
type Statistics struct {
	Count         int
	TotalDistance float64 // km
	AvgDistance   float64
	MinDistance   float64
	MaxDistance   float64
	TotalDuration time.Duration
	AvgDuration   time.Duration
	AvgSpeed      float64 // km/h, total distance over total time
	AvgHeartRate  int     // over exercises that recorded one
	TotalAscent   int
	TotalCalories int
	BySportType   []SportTypeStatistics // in order of first appearance
}

// Summarize computes statistics over the given exercises
func Summarize(exercises []*domain.Exercise) *Statistics {
	s := &Statistics{Count: len(exercises)}
	if len(exercises) == 0 {
		return s
	}

	var totalSeconds, heartRateSum, heartRateCount int
	perType := map[int]int{}
	s.MinDistance = exercises[0].Distance

	for _, e := range exercises {
		s.TotalDistance += e.Distance
		s.MinDistance = min(s.MinDistance, e.Distance)
		s.MaxDistance = max(s.MaxDistance, e.Distance)
		totalSeconds += e.Duration
		s.TotalAscent += e.Ascent
		s.TotalCalories += e.Calories
		if e.AvgHeartRate > 0 {
			heartRateSum += e.AvgHeartRate
			heartRateCount++
		}

		idx, ok := perType[e.SportType.ID]
		if !ok {
			idx = len(s.BySportType)
			perType[e.SportType.ID] = idx
			s.BySportType = append(s.BySportType, SportTypeStatistics{SportType: e.SportType})
		}
		s.BySportType[idx].Count++
		s.BySportType[idx].Distance += e.Distance
		s.BySportType[idx].Duration += time.Duration(e.Duration) * time.Second
	}

	s.TotalDuration = time.Duration(totalSeconds) * time.Second
	s.AvgDistance = s.TotalDistance / float64(s.Count)
	s.AvgDuration = s.TotalDuration / time.Duration(s.Count)
	if totalSeconds > 0 {
		s.AvgSpeed = s.TotalDistance / (float64(totalSeconds) / 3600)
	}
	if heartRateCount > 0 {
		s.AvgHeartRate = heartRateSum / heartRateCount
	}
	return s
}

// StatisticsCommand computes statistics over the exercises matching a filter
type StatisticsCommand struct {
	book     *domain.Logbook
	Criteria *domain.FilterCriteria
}

// NewStatisticsCommand creates a new StatisticsCommand
func NewStatisticsCommand(book *domain.Logbook, criteria *domain.FilterCriteria) *StatisticsCommand {
	return &StatisticsCommand{
		book:     book,
		Criteria: criteria,
	}
}

// Execute filters the exercises and summarizes them. The criteria are
// evaluated as an exercise filter whatever their kind.
func (c *StatisticsCommand) Execute(ctx context.Context) (*Statistics, error) {
	criteria := c.Criteria
	if criteria != nil && criteria.Kind != domain.EntryKindExercise {
		criteria = criteria.Clone()
		criteria.Kind = domain.EntryKindExercise
	}

	result, err := NewFilterEntriesCommand(c.book, criteria).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	return Summarize(result.Exercises), nil
}
