package meeting_test

import (
	"errors"
	"reflect"
	"testing"

	"scheduling-assistant/internal/meeting"
	"scheduling-assistant/internal/model"
)

func completeContext() model.SessionContext {
	sc := model.NewSessionContext([]string{"DATE", "TIME", "DURATION", "ATTENDEE"})
	sc.Slots["DATE"] = []string{"2024-06-12"}
	sc.Slots["TIME"] = []string{"3pm"}
	sc.Slots["DURATION"] = []string{"45 mins"}
	sc.Slots["ATTENDEE"] = []string{
		"John Smith (john.smith@example.com)",
		"Jane Doe (jane.doe@example.com)",
	}
	sc.Complete = true
	return sc
}

func TestPrepare(t *testing.T) {
	record, err := meeting.Prepare(completeContext())
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if want := "Meeting on 2024-06-12 at 3pm"; record.Subject != want {
		t.Errorf("Subject = %q, want %q", record.Subject, want)
	}
	if record.Date != "2024-06-12" || record.Time != "3pm" {
		t.Errorf("Date/Time = %q/%q", record.Date, record.Time)
	}
	if record.DurationMinutes != 45 {
		t.Errorf("DurationMinutes = %d, want 45", record.DurationMinutes)
	}
	wantEmails := []string{"john.smith@example.com", "jane.doe@example.com"}
	if !reflect.DeepEqual(record.Attendees, wantEmails) {
		t.Errorf("Attendees = %v, want %v", record.Attendees, wantEmails)
	}
}

func TestPrepareIncomplete(t *testing.T) {
	sc := completeContext()
	sc.Complete = false

	if _, err := meeting.Prepare(sc); !errors.Is(err, meeting.ErrIncompleteContext) {
		t.Fatalf("Prepare() error = %v, want ErrIncompleteContext", err)
	}
}

func TestPrepareDurations(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{name: "Minutes", duration: "90 mins", want: 90},
		{name: "Hours", duration: "2 hours", want: 120},
		{name: "Single hour", duration: "1 hours", want: 60},
		{name: "Garbage defaults", duration: "soonish", want: 30},
		{name: "Empty defaults", duration: "", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := completeContext()
			if tt.duration == "" {
				sc.Slots["DURATION"] = nil
			} else {
				sc.Slots["DURATION"] = []string{tt.duration}
			}

			record, err := meeting.Prepare(sc)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			if record.DurationMinutes != tt.want {
				t.Errorf("DurationMinutes = %d, want %d", record.DurationMinutes, tt.want)
			}
		})
	}
}

func TestPrepareSkipsAttendeesWithoutEmail(t *testing.T) {
	sc := completeContext()
	sc.Slots["ATTENDEE"] = []string{
		"John Smith (john.smith@example.com)",
		"Mystery Guest",
	}

	record, err := meeting.Prepare(sc)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if want := []string{"john.smith@example.com"}; !reflect.DeepEqual(record.Attendees, want) {
		t.Errorf("Attendees = %v, want %v", record.Attendees, want)
	}
}
