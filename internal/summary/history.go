package summary

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/moodyssey/internal/models"
)

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MoodFrequency counts records per mood, sorted by mood name.
func MoodFrequency(records []models.MoodRecord) []MoodCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Mood]++
	}

	out := make([]MoodCount, 0, len(counts))
	for mood, n := range counts {
		out = append(out, MoodCount{Mood: mood, Count: n})
	}
	slices.SortFunc(out, func(a, b MoodCount) int {
		return strings.Compare(a.Mood, b.Mood)
	})
	return out
}

// History returns a copy of records, newest first. Records with equal
// timestamps keep their stored order.
func History(records []models.MoodRecord) []models.MoodRecord {
	out := slices.Clone(records)
	if out == nil {
		return []models.MoodRecord{}
	}
	slices.SortStableFunc(out, func(a, b models.MoodRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// DistinctDays counts the distinct UTC dates records fall on.
func DistinctDays(records []models.MoodRecord) int {
	days := map[string]struct{}{}
	for _, r := range records {
		days[r.Timestamp.UTC().Format(dayLayout)] = struct{}{}
	}
	return len(days)
}

// DistinctHours counts the distinct UTC hours of day records fall on.
func DistinctHours(records []models.MoodRecord) int {
	hours := map[int]struct{}{}
	for _, r := range records {
		hours[r.Timestamp.UTC().Hour()] = struct{}{}
	}
	return len(hours)
}
