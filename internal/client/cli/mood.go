package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moodyssey/internal/models"
)

var errInvalidChoice = errors.New("invalid mood choice")

// parseMoodChoice accepts either the 1-based position in models.Moods or
// the mood name in any case.
func parseMoodChoice(s string) (string, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(models.Moods) {
			return "", fmt.Errorf("%w: choose 1-%d", errInvalidChoice, len(models.Moods))
		}
		return models.Moods[n-1], nil
	}
	for _, m := range models.Moods {
		if strings.EqualFold(m, s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not one of the listed moods", errInvalidChoice, s)
}

// LogMood asks for a mood and an optional note and stores the entry.
func (a *App) LogMood(ctx context.Context) error {
	var b strings.Builder
	b.WriteString("How are you feeling?")
	for i, m := range models.Moods {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, m)
	}

	choice, err := getSimpleText(a.reader, b.String(), a.out)
	if err != nil {
		return err
	}
	mood, err := parseMoodChoice(choice)
	if err != nil {
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional, press Enter to skip)", a.out)
	if err != nil {
		return err
	}

	rec, err := a.client.AddMood(ctx, mood, note)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Mood logged: %s at %s", rec.Mood, rec.Timestamp.Format(timeLayout)))
	return nil
}
