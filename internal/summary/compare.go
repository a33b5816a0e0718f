package summary

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/moodyssey/internal/models"
)

// Share is one category's percentage in each window. Delta is in percentage
// points, recent minus previous.
type Share struct {
	Category models.Category `json:"category"`
	Recent   float64         `json:"recent"`
	Previous float64         `json:"previous"`
	Delta    float64         `json:"delta"`
}

type Comparison struct {
	Recent        Window  `json:"recent"`
	Previous      Window  `json:"previous"`
	RecentTotal   int     `json:"recent_total"`
	PreviousTotal int     `json:"previous_total"`
	Shares        []Share `json:"shares"`
}

// Comparable reports whether both windows contain records.
func (c Comparison) Comparable() bool {
	return c.RecentTotal > 0 && c.PreviousTotal > 0
}

// Compare computes each category's share of the records in recent and in
// previous. Windows may overlap; a record inside both counts in both.
// Shares cover the categories present in either window, ordered by name.
func Compare(records []models.MoodRecord, recent, previous Window) Comparison {
	recentCounts := map[models.Category]int{}
	previousCounts := map[models.Category]int{}
	cmp := Comparison{Recent: recent, Previous: previous, Shares: []Share{}}

	for _, r := range records {
		ts := r.Timestamp.UTC()
		c := r.Category()
		if recent.Contains(ts) {
			recentCounts[c]++
			cmp.RecentTotal++
		}
		if previous.Contains(ts) {
			previousCounts[c]++
			cmp.PreviousTotal++
		}
	}

	categories := make([]models.Category, 0, len(models.Categories))
	for _, c := range models.Categories {
		if recentCounts[c] > 0 || previousCounts[c] > 0 {
			categories = append(categories, c)
		}
	}
	slices.Sort(categories)

	for _, c := range categories {
		s := Share{
			Category: c,
			Recent:   percent(recentCounts[c], cmp.RecentTotal),
			Previous: percent(previousCounts[c], cmp.PreviousTotal),
		}
		s.Delta = s.Recent - s.Previous
		cmp.Shares = append(cmp.Shares, s)
	}
	return cmp
}

// TrailingWindows returns the window of the last recentDays calendar days,
// today included, and the window of the previousDays days right before it.
// Days are UTC dates. The recent window has no upper bound, so records
// stamped after now (clock skew, imported data) still count as recent.
func TrailingWindows(now time.Time, recentDays, previousDays int) (recent, previous Window, err error) {
	if recentDays < 1 || previousDays < 1 {
		return Window{}, Window{}, fmt.Errorf("%w: day counts must be at least 1, got %d and %d",
			ErrInvalidWindow, recentDays, previousDays)
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	recentStart := today.AddDate(0, 0, -(recentDays - 1))

	recent = Window{From: recentStart}
	previous = Window{From: recentStart.AddDate(0, 0, -previousDays), To: recentStart}
	return recent, previous, nil
}
