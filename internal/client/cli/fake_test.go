package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/moodyssey/internal/client/config"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

type fakeClient struct {
	registerUser string
	registerPass []byte
	registerMsg  string
	registerErr  error
	registerHits int

	loginUser string
	loginPass []byte
	loginMsg  string
	loginErr  error

	logoutHits int
	logoutErr  error

	addMood string
	addNote string
	addRec  models.MoodRecord
	addErr  error

	records     []models.MoodRecord
	newestFirst bool
	warning     string
	listErr     error

	tables     map[summary.Bucket]summary.Table
	summarized []summary.Bucket

	comparison   summary.Comparison
	compareDays  [2]int
	compareHits  int
	frequency    []summary.MoodCount
	frequencyErr error

	closed bool
}

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) Register(_ context.Context, username string, password []byte) (string, error) {
	f.registerHits++
	f.registerUser, f.registerPass = username, append([]byte(nil), password...)
	return f.registerMsg, f.registerErr
}

func (f *fakeClient) Login(_ context.Context, username string, password []byte) (string, error) {
	f.loginUser, f.loginPass = username, append([]byte(nil), password...)
	return f.loginMsg, f.loginErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.logoutHits++
	return f.logoutErr
}

func (f *fakeClient) AddMood(_ context.Context, mood, note string) (models.MoodRecord, error) {
	f.addMood, f.addNote = mood, note
	return f.addRec, f.addErr
}

func (f *fakeClient) ListMoods(_ context.Context, newestFirst bool) ([]models.MoodRecord, string, error) {
	f.newestFirst = newestFirst
	return f.records, f.warning, f.listErr
}

func (f *fakeClient) Summarize(_ context.Context, b summary.Bucket, w summary.Window) (summary.Table, string, error) {
	f.summarized = append(f.summarized, b)
	if t, ok := f.tables[b]; ok {
		return t, f.warning, nil
	}
	t, err := summary.Summarize(f.records, b, w)
	return t, f.warning, err
}

func (f *fakeClient) Compare(_ context.Context, recentDays, previousDays int) (summary.Comparison, string, error) {
	f.compareHits++
	f.compareDays = [2]int{recentDays, previousDays}
	return f.comparison, f.warning, nil
}

func (f *fakeClient) Frequency(context.Context) ([]summary.MoodCount, string, error) {
	if f.frequency == nil && f.frequencyErr == nil {
		return summary.MoodFrequency(f.records), f.warning, nil
	}
	return f.frequency, f.warning, f.frequencyErr
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{},
		client: fc,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
		logger: logging.Nop(),
	}, out
}

// capturePrintln routes printlnFn into the returned buffer for the test.
func capturePrintln(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return buf
}

// stubInputs replaces the prompt helpers with canned answers, consumed in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := []byte(passwords[0])
		passwords = passwords[1:]
		return p, nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
