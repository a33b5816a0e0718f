// Package summary derives aggregates from a user's mood records: category
// counts per time bucket, two-window comparisons, mood frequency and history
// ordering. All functions are pure and leave their input untouched.
package summary

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/moodyssey/internal/models"
)

var (
	ErrInvalidBucket = errors.New("invalid bucket")
	ErrInvalidWindow = errors.New("invalid window")
)

// Bucket is the time partition used by Summarize.
type Bucket string

const (
	BucketDay     Bucket = "day"
	BucketWeekday Bucket = "weekday"
	BucketHour    Bucket = "hour"
)

func ParseBucket(s string) (Bucket, error) {
	switch b := Bucket(s); b {
	case BucketDay, BucketWeekday, BucketHour:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBucket, s)
}

const dayLayout = "2006-01-02"

// weekdays in table order.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Window is the half-open range [From, To). A zero bound is unbounded.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

// Row holds the per-category counts of one bucket.
type Row struct {
	Key    string                  `json:"key"`
	Counts map[models.Category]int `json:"counts"`
	Total  int                     `json:"total"`
}

// Table is the result of Summarize. Categories lists the categories that
// occur in the window, in models.Categories order.
type Table struct {
	Bucket     Bucket                      `json:"bucket"`
	Window     Window                      `json:"window"`
	Categories []models.Category           `json:"categories"`
	Rows       []Row                       `json:"rows"`
	Totals     map[models.Category]int     `json:"totals"`
	Percent    map[models.Category]float64 `json:"percent"`
	Total      int                         `json:"total"`
}

// Summarize groups the records inside window by bucket and category.
//
// Day rows are "2006-01-02" keys in ascending order, hour rows "00".."23" in
// ascending order; both list only buckets that occur. Weekday rows always
// list Monday through Sunday, zero-filled.
func Summarize(records []models.MoodRecord, bucket Bucket, window Window) (Table, error) {
	if _, err := ParseBucket(string(bucket)); err != nil {
		return Table{}, err
	}

	table := Table{
		Bucket:     bucket,
		Window:     window,
		Categories: []models.Category{},
		Rows:       []Row{},
		Totals:     map[models.Category]int{},
		Percent:    map[models.Category]float64{},
	}

	rows := map[string]*Row{}
	for _, r := range records {
		ts := r.Timestamp.UTC()
		if !window.Contains(ts) {
			continue
		}
		key := bucketKey(bucket, ts)
		row, ok := rows[key]
		if !ok {
			row = &Row{Key: key, Counts: map[models.Category]int{}}
			rows[key] = row
		}
		c := r.Category()
		row.Counts[c]++
		row.Total++
		table.Totals[c]++
		table.Total++
	}

	for _, c := range models.Categories {
		if table.Totals[c] > 0 {
			table.Categories = append(table.Categories, c)
			table.Percent[c] = percent(table.Totals[c], table.Total)
		}
	}

	if bucket == BucketWeekday {
		for _, d := range weekdays {
			if row, ok := rows[d.String()]; ok {
				table.Rows = append(table.Rows, *row)
				continue
			}
			table.Rows = append(table.Rows, Row{Key: d.String(), Counts: map[models.Category]int{}})
		}
		return table, nil
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	// Both key formats are fixed width, so lexical order is chronological.
	slices.Sort(keys)
	for _, k := range keys {
		table.Rows = append(table.Rows, *rows[k])
	}
	return table, nil
}

func bucketKey(bucket Bucket, ts time.Time) string {
	switch bucket {
	case BucketWeekday:
		return ts.Weekday().String()
	case BucketHour:
		return fmt.Sprintf("%02d", ts.Hour())
	default:
		return ts.Format(dayLayout)
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
