package extractor_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"scheduling-assistant/pkg/datemath"
	"scheduling-assistant/pkg/extractor"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// baseTime is a Tuesday so next-weekday arithmetic is easy to eyeball.
var baseTime = time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)

func newExtractor(t *testing.T) *extractor.Extractor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return extractor.New(&mockLogger{}, parser, func() time.Time { return baseTime })
}

func TestExtractTimes(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Hour with meridiem", text: "let's meet at 3pm in the office", want: []string{"3pm"}},
		{name: "Hour minute with meridiem", text: "the call starts around 10:30am today", want: []string{"10:30am"}},
		{name: "24 hour clock", text: "the review begins at 14:30 sharp", want: []string{"14:30"}},
		{name: "No time", text: "let's catch up sometime soon please", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractAt(tt.text, baseTime)[extractor.EntityTime]
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TIME = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDurations(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Minutes", text: "block out 90 mins for the workshop", want: []string{"90 mins"}},
		{name: "Hours", text: "the sync will run 2 hours at most", want: []string{"2 hours"}},
		{name: "For minutes", text: "let's talk for 45 minutes about the launch", want: []string{"45 mins"}},
		{name: "Bare number is not a duration", text: "there will be 30 people joining us", want: nil},
		{name: "Full word minutes", text: "keep the retro to 15 minutes total", want: []string{"15 mins"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractAt(tt.text, baseTime)[extractor.EntityDuration]
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DURATION = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDates(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Tomorrow", text: "let's plan the kickoff for tomorrow then", want: []string{"2024-06-12"}},
		{name: "Next same weekday is a week out", text: "can we do it next tuesday instead please", want: []string{"2024-06-18"}},
		{name: "Next adjacent weekday", text: "push the review to next wednesday if possible", want: []string{"2024-06-12"}},
		{name: "Explicit day month", text: "book the room for 26th July as discussed", want: []string{"2024-07-26"}},
		{name: "Invalid day month kept verbatim", text: "they suggested 31st April which cannot be right", want: []string{"31st April"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractAt(tt.text, baseTime)[extractor.EntityDate]
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DATE = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEarlyExitSkipsAttendees(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
	}{
		{name: "Bare time", text: "3pm"},
		{name: "Bare duration", text: "30 mins"},
		{name: "Bare date", text: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := e.ExtractAt(tt.text, baseTime)
			if got := entities[extractor.EntityAttendee]; len(got) != 0 {
				t.Errorf("ATTENDEE = %v, want empty", got)
			}
		})
	}
}

func TestExtractAttendees(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Separator list", text: "schedule with Alice and Bob", want: []string{"Alice", "Bob"}},
		{name: "Comma list", text: "invite John Smith, Jane Doe", want: []string{"John Smith", "Jane Doe"}},
		{name: "Single full name", text: "add John Smith", want: []string{"John Smith"}},
		{name: "Stoplist filters pronouns", text: "schedule a meeting with me", want: nil},
		{name: "Command words stripped", text: "plan a meeting with Sarah", want: []string{"Sarah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractAt(tt.text, baseTime)[extractor.EntityAttendee]
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ATTENDEE = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractFullUtterance(t *testing.T) {
	e := newExtractor(t)

	entities := e.ExtractAt("schedule with John Smith tomorrow at 3pm for 1 hour", baseTime)

	if want := []string{"3pm"}; !reflect.DeepEqual(entities[extractor.EntityTime], want) {
		t.Errorf("TIME = %v, want %v", entities[extractor.EntityTime], want)
	}
	if want := []string{"1 hours"}; !reflect.DeepEqual(entities[extractor.EntityDuration], want) {
		t.Errorf("DURATION = %v, want %v", entities[extractor.EntityDuration], want)
	}
	if want := []string{"2024-06-12"}; !reflect.DeepEqual(entities[extractor.EntityDate], want) {
		t.Errorf("DATE = %v, want %v", entities[extractor.EntityDate], want)
	}
	if want := []string{"John Smith"}; !reflect.DeepEqual(entities[extractor.EntityAttendee], want) {
		t.Errorf("ATTENDEE = %v, want %v", entities[extractor.EntityAttendee], want)
	}
}
