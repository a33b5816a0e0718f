// Package models holds the domain types shared by storage, services and the
// transport layer.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodyssey/internal/common"
)

// Moods the front end offers, in display order.
const (
	MoodHappy   = "Happy"
	MoodNeutral = "Neutral"
	MoodSad     = "Sad"
	MoodAngry   = "Angry"
	MoodAnxious = "Anxious"
	MoodTired   = "Tired"
	MoodExcited = "Excited"
)

var Moods = []string{MoodHappy, MoodNeutral, MoodSad, MoodAngry, MoodAnxious, MoodTired, MoodExcited}

// IsKnownMood reports whether mood is one of Moods.
func IsKnownMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Category is a coarse grouping of moods.
type Category string

const (
	CategoryPositive Category = "Positive"
	CategoryNeutral  Category = "Neutral"
	CategoryNegative Category = "Negative"
	CategoryUnknown  Category = "Unknown"
)

// Categories in the order tables list them.
var Categories = []Category{CategoryNegative, CategoryNeutral, CategoryPositive, CategoryUnknown}

var moodCategories = map[string]Category{
	MoodHappy:   CategoryPositive,
	MoodExcited: CategoryPositive,
	MoodNeutral: CategoryNeutral,
	MoodSad:     CategoryNegative,
	MoodAngry:   CategoryNegative,
	MoodAnxious: CategoryNegative,
	MoodTired:   CategoryNegative,
}

// CategoryOf maps a mood to its category; unrecognised moods are Unknown.
func CategoryOf(mood string) Category {
	if c, ok := moodCategories[mood]; ok {
		return c
	}
	return CategoryUnknown
}

// MoodRecord is one journal entry. Records have no identity beyond their
// content and position in the user's sequence.
type MoodRecord struct {
	Mood      string
	Note      *string
	Timestamp time.Time
}

// NewMoodRecord validates mood, normalizes note and stamps the record with
// ts, or with the current time when ts is zero. Timestamps are kept in UTC at
// microsecond precision, the precision of the stored form.
func NewMoodRecord(mood, note string, ts time.Time) (MoodRecord, error) {
	if mood == "" {
		return MoodRecord{}, common.ErrEmptyMood
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	return MoodRecord{
		Mood:      mood,
		Note:      normalizeNote(note),
		Timestamp: ts.UTC().Truncate(time.Microsecond),
	}, nil
}

// Category derives the record's category from its mood.
func (r MoodRecord) Category() Category {
	return CategoryOf(r.Mood)
}

// NoteText returns the note or "" when absent.
func (r MoodRecord) NoteText() string {
	if r.Note == nil {
		return ""
	}
	return *r.Note
}

func normalizeNote(note string) *string {
	if strings.TrimSpace(note) == "" {
		return nil
	}
	return &note
}

// timestampLayout is a timezone-naive ISO-8601 timestamp; the fractional part
// is appended separately.
const timestampLayout = "2006-01-02T15:04:05"

// FormatTimestamp renders t as naive UTC with a six-digit fraction that is
// omitted when zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	s := t.Format(timestampLayout)
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

// ParseTimestamp accepts the naive form written by FormatTimestamp (with any
// fraction) and RFC 3339 timestamps with an offset, returning UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Truncate(time.Microsecond), nil
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.Truncate(time.Microsecond), nil
}

type moodRecordJSON struct {
	Mood      string  `json:"mood"`
	Note      *string `json:"note"`
	Timestamp string  `json:"timestamp"`
}

func (r MoodRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(moodRecordJSON{
		Mood:      r.Mood,
		Note:      r.Note,
		Timestamp: FormatTimestamp(r.Timestamp),
	})
}

func (r *MoodRecord) UnmarshalJSON(b []byte) error {
	var raw moodRecordJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Mood == "" {
		return common.ErrEmptyMood
	}
	ts, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return err
	}

	r.Mood = raw.Mood
	r.Note = nil
	if raw.Note != nil {
		r.Note = normalizeNote(*raw.Note)
	}
	r.Timestamp = ts
	return nil
}
