package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

const timeLayout = "2006-01-02 15:04:05"

// Window sizes of the dashboard comparison.
const (
	dashboardRecentDays   = 7
	dashboardPreviousDays = 7
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printWarning(warning string) {
	if warning != "" {
		printlnFn("Warning:", warning)
	}
}

func renderHistory(w io.Writer, records []models.MoodRecord) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tMOOD\tNOTE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Timestamp.Format(timeLayout), r.Mood, r.NoteText())
	}
	return tw.Flush()
}

func renderFrequency(w io.Writer, counts []summary.MoodCount) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MOOD\tCOUNT")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Mood, c.Count)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, t summary.Table) error {
	tw := newTable(w)

	header := []string{strings.ToUpper(string(t.Bucket))}
	for _, c := range t.Categories {
		header = append(header, strings.ToUpper(string(c)))
	}
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range t.Rows {
		cells := []string{row.Key}
		for _, c := range t.Categories {
			cells = append(cells, strconv.Itoa(row.Counts[c]))
		}
		cells = append(cells, strconv.Itoa(row.Total))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if t.Total == 0 {
		return nil
	}
	shares := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		shares = append(shares, fmt.Sprintf("%s %.1f%%", c, t.Percent[c]))
	}
	_, err := fmt.Fprintf(w, "Overall: %s (%d entries)\n", strings.Join(shares, ", "), t.Total)
	return err
}

// changeLine describes one category's move between the two windows.
func changeLine(s summary.Share) string {
	// Deltas that print as 0.0 count as no change.
	switch d := math.Round(s.Delta*10) / 10; {
	case d > 0:
		return fmt.Sprintf("- %s: Increased by %.1f%%", s.Category, d)
	case d < 0:
		return fmt.Sprintf("- %s: Decreased by %.1f%%", s.Category, -d)
	}
	return fmt.Sprintf("- %s: No significant change.", s.Category)
}

func renderComparison(w io.Writer, c summary.Comparison, recentDays, previousDays int) error {
	fmt.Fprintf(w, "Mood category distribution (last %d days vs. previous %d days)\n", recentDays, previousDays)

	tw := newTable(w)
	fmt.Fprintf(tw, "CATEGORY\tLAST %d DAYS\tPREVIOUS %d DAYS\n", recentDays, previousDays)
	for _, s := range c.Shares {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\n", s.Category, s.Recent, s.Previous)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "Changes:")
	for _, s := range c.Shares {
		if _, err := fmt.Fprintln(w, changeLine(s)); err != nil {
			return err
		}
	}
	return nil
}

// History prints every entry, newest first.
func (a *App) History(ctx context.Context) error {
	records, warning, err := a.client.ListMoods(ctx, true)
	if err != nil {
		return err
	}
	printWarning(warning)
	if len(records) == 0 {
		printlnFn("No mood entries found yet. Use 'log' to add one.")
		return nil
	}
	return renderHistory(a.out, records)
}

// Trend prints category counts over all entries, bucketed by bucket.
func (a *App) Trend(ctx context.Context, bucket string) error {
	b, err := summary.ParseBucket(bucket)
	if err != nil {
		return err
	}
	table, warning, err := a.client.Summarize(ctx, b, summary.Window{})
	if err != nil {
		return err
	}
	printWarning(warning)
	if table.Total == 0 {
		printlnFn("No mood entries found yet. Use 'log' to add one.")
		return nil
	}
	return renderSummary(a.out, table)
}

func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive number of days", summary.ErrInvalidWindow, s)
	}
	return n, nil
}

// Compare prints category shares of the last recent days against the
// previous days before them.
func (a *App) Compare(ctx context.Context, recent, previous string) error {
	r, err := parseDays(recent)
	if err != nil {
		return err
	}
	p, err := parseDays(previous)
	if err != nil {
		return err
	}
	return a.compare(ctx, r, p)
}

func (a *App) compare(ctx context.Context, recentDays, previousDays int) error {
	c, warning, err := a.client.Compare(ctx, recentDays, previousDays)
	if err != nil {
		return err
	}
	printWarning(warning)
	if !c.Comparable() {
		printlnFn("Not enough data for this period comparison. Adjust the ranges or log more moods.")
		return nil
	}
	return renderComparison(a.out, c, recentDays, previousDays)
}

func (a *App) section(title string) {
	fmt.Fprintf(a.out, "\n== %s ==\n", title)
}

// Dashboard prints progress and pattern reviews followed by the full history.
func (a *App) Dashboard(ctx context.Context) error {
	records, warning, err := a.client.ListMoods(ctx, true)
	if err != nil {
		return err
	}
	printWarning(warning)
	if len(records) == 0 {
		printlnFn("No mood entries found yet. Log your first mood to see your dashboard!")
		return nil
	}

	a.section("Tracking your mood progress")
	if summary.DistinctDays(records) < 2 {
		printlnFn("Not enough unique dates for a meaningful comparison. Keep logging your moods!")
	} else if err := a.compare(ctx, dashboardRecentDays, dashboardPreviousDays); err != nil {
		return err
	}

	a.section("Overall mood frequency")
	counts, _, err := a.client.Frequency(ctx)
	if err != nil {
		return err
	}
	if err := renderFrequency(a.out, counts); err != nil {
		return err
	}

	buckets := []summary.Bucket{summary.BucketDay, summary.BucketWeekday}
	if summary.DistinctHours(records) > 1 {
		buckets = append(buckets, summary.BucketHour)
	}
	for _, b := range buckets {
		a.section("Mood by " + string(b))
		table, _, err := a.client.Summarize(ctx, b, summary.Window{})
		if err != nil {
			return err
		}
		if err := renderSummary(a.out, table); err != nil {
			return err
		}
	}

	a.section("Full mood history")
	return renderHistory(a.out, records)
}
