package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

func rec(t *testing.T, mood, note string, ts time.Time) models.MoodRecord {
	t.Helper()
	r, err := models.NewMoodRecord(mood, note, ts)
	require.NoError(t, err)
	return r
}

func TestChangeLine(t *testing.T) {
	tests := []struct {
		delta float64
		want  string
	}{
		{12.5, "- Positive: Increased by 12.5%"},
		{-33.333, "- Positive: Decreased by 33.3%"},
		{0, "- Positive: No significant change."},
		{0.04, "- Positive: No significant change."},
	}
	for _, tt := range tests {
		got := changeLine(summary.Share{Category: models.CategoryPositive, Delta: tt.delta})
		assert.Equal(t, tt.want, got)
	}
}

func TestRenderSummary(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		{Mood: models.MoodHappy, Timestamp: day},
		{Mood: models.MoodSad, Timestamp: day.Add(time.Hour)},
		{Mood: models.MoodHappy, Timestamp: day.AddDate(0, 0, 1)},
	}
	table, err := summary.Summarize(records, summary.BucketDay, summary.Window{})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, renderSummary(&out, table))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"DAY", "NEGATIVE", "POSITIVE", "TOTAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2026-03-02", "1", "1", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2026-03-03", "0", "1", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, "Overall: Negative 33.3%, Positive 66.7% (3 entries)", lines[3])
}

func TestHistory(t *testing.T) {
	printed := capturePrintln(t)
	ts := time.Date(2026, 3, 2, 9, 30, 15, 0, time.UTC)
	fc := &fakeClient{
		records: []models.MoodRecord{rec(t, models.MoodTired, "long day", ts)},
		warning: "records for alice: corrupt data",
	}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.History(context.Background()))
	assert.True(t, fc.newestFirst)
	assert.Contains(t, printed.String(), "Warning: records for alice: corrupt data")
	assert.Contains(t, out.String(), "2026-03-02 09:30:15")
	assert.Contains(t, out.String(), "long day")
}

func TestHistory_Empty(t *testing.T) {
	printed := capturePrintln(t)
	a, out := newTestApp(&fakeClient{}, "")

	require.NoError(t, a.History(context.Background()))
	assert.Contains(t, printed.String(), "No mood entries found yet")
	assert.Empty(t, out.String())
}

func TestTrend_InvalidBucket(t *testing.T) {
	fc := &fakeClient{}
	a, _ := newTestApp(fc, "")

	err := a.Trend(context.Background(), "month")
	require.ErrorIs(t, err, summary.ErrInvalidBucket)
	assert.Empty(t, fc.summarized)
}

func TestCompare(t *testing.T) {
	t.Run("invalid days", func(t *testing.T) {
		fc := &fakeClient{}
		a, _ := newTestApp(fc, "")
		require.ErrorIs(t, a.Compare(context.Background(), "0", "7"), summary.ErrInvalidWindow)
		require.ErrorIs(t, a.Compare(context.Background(), "7", "x"), summary.ErrInvalidWindow)
		assert.Zero(t, fc.compareHits)
	})

	t.Run("not comparable", func(t *testing.T) {
		printed := capturePrintln(t)
		fc := &fakeClient{comparison: summary.Comparison{RecentTotal: 3}}
		a, out := newTestApp(fc, "")

		require.NoError(t, a.Compare(context.Background(), "3", "5"))
		assert.Equal(t, [2]int{3, 5}, fc.compareDays)
		assert.Contains(t, printed.String(), "Not enough data")
		assert.Empty(t, out.String())
	})

	t.Run("rendered", func(t *testing.T) {
		fc := &fakeClient{comparison: summary.Comparison{
			RecentTotal:   2,
			PreviousTotal: 4,
			Shares: []summary.Share{
				{Category: models.CategoryNegative, Recent: 0, Previous: 75, Delta: -75},
				{Category: models.CategoryPositive, Recent: 100, Previous: 25, Delta: 75},
			},
		}}
		a, out := newTestApp(fc, "")

		require.NoError(t, a.Compare(context.Background(), "7", "7"))
		text := out.String()
		assert.Contains(t, text, "last 7 days vs. previous 7 days")
		assert.Contains(t, text, "- Negative: Decreased by 75.0%")
		assert.Contains(t, text, "- Positive: Increased by 75.0%")
	})
}

func TestDashboard(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty", func(t *testing.T) {
		printed := capturePrintln(t)
		fc := &fakeClient{}
		a, _ := newTestApp(fc, "")

		require.NoError(t, a.Dashboard(context.Background()))
		assert.Contains(t, printed.String(), "Log your first mood")
		assert.Empty(t, fc.summarized)
	})

	t.Run("single day and hour", func(t *testing.T) {
		printed := capturePrintln(t)
		fc := &fakeClient{records: []models.MoodRecord{
			rec(t, models.MoodHappy, "", now),
			rec(t, models.MoodHappy, "", now),
		}}
		a, out := newTestApp(fc, "")

		require.NoError(t, a.Dashboard(context.Background()))
		assert.Contains(t, printed.String(), "Not enough unique dates")
		assert.Zero(t, fc.compareHits)
		assert.Equal(t, []summary.Bucket{summary.BucketDay, summary.BucketWeekday}, fc.summarized)
		assert.Contains(t, out.String(), "== Full mood history ==")
	})

	t.Run("several days and hours", func(t *testing.T) {
		capturePrintln(t)
		fc := &fakeClient{
			records: []models.MoodRecord{
				rec(t, models.MoodSad, "", now.AddDate(0, 0, -8)),
				rec(t, models.MoodHappy, "", now.Add(-2*time.Hour)),
			},
			comparison: summary.Comparison{
				RecentTotal:   1,
				PreviousTotal: 1,
				Shares: []summary.Share{
					{Category: models.CategoryNegative, Previous: 100, Delta: -100},
					{Category: models.CategoryPositive, Recent: 100, Delta: 100},
				},
			},
		}
		a, out := newTestApp(fc, "")

		require.NoError(t, a.Dashboard(context.Background()))
		assert.Equal(t, [2]int{dashboardRecentDays, dashboardPreviousDays}, fc.compareDays)

		text := out.String()
		for _, section := range []string{
			"== Tracking your mood progress ==",
			"== Overall mood frequency ==",
			"== Mood by day ==",
			"== Mood by weekday ==",
			"== Full mood history ==",
		} {
			assert.Contains(t, text, section)
		}
		assert.Contains(t, text, "- Positive: Increased by 100.0%")

		assert.Contains(t, text, "== Mood by hour ==")
	})
}
