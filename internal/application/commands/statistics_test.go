package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportlog/internal/domain"
	"sportlog/internal/domain/domaintest"
)

func TestSummarize(t *testing.T) {
	book := domaintest.NewLogbook()
	stats := Summarize(book.Exercises.All())

	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 100.0, stats.TotalDistance, 0.001)
	assert.InDelta(t, 100.0/3, stats.AvgDistance, 0.001)
	assert.InDelta(t, 10.0, stats.MinDistance, 0.001)
	assert.InDelta(t, 60.0, stats.MaxDistance, 0.001)
	assert.Equal(t, 13800*time.Second, stats.TotalDuration)
	assert.Equal(t, 4600*time.Second, stats.AvgDuration)
	assert.InDelta(t, 100.0/(13800.0/3600), stats.AvgSpeed, 0.001)
	assert.Equal(t, 155, stats.AvgHeartRate)
	assert.Equal(t, 750, stats.TotalAscent)
	assert.Equal(t, 2300, stats.TotalCalories)

	require.Len(t, stats.BySportType, 2)
	assert.Equal(t, "Cycling", stats.BySportType[0].SportType.Name)
	assert.Equal(t, 2, stats.BySportType[0].Count)
	assert.InDelta(t, 90.0, stats.BySportType[0].Distance, 0.001)
	assert.Equal(t, 3*time.Hour, stats.BySportType[0].Duration)
	assert.Equal(t, "Running", stats.BySportType[1].SportType.Name)
	assert.Equal(t, 1, stats.BySportType[1].Count)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.AvgDistance)
	assert.Zero(t, stats.AvgSpeed)
	assert.Empty(t, stats.BySportType)
}

func TestStatisticsCommand_IgnoresFilterKind(t *testing.T) {
	book := domaintest.NewLogbook()
	running, _ := book.SportTypes.ByID(2)

	criteria := domaintest.NewFilter(domain.EntryKindWeight)
	criteria.SportType = running

	stats, err := NewStatisticsCommand(book, criteria).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 10.0, stats.TotalDistance, 0.001)
	assert.Equal(t, domain.EntryKindWeight, criteria.Kind, "caller's criteria must stay untouched")
}
