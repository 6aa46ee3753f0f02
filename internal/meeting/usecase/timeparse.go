package usecase

import (
	"strings"
	"time"

	"scheduling-assistant/internal/meeting"
	"scheduling-assistant/pkg/response"
)

var dateLayouts = []string{
	response.DateFormat,
	"01/02/2006",
	"02/01/2006",
	"January 2, 2006",
}

// eventWindow resolves a record's date, time and duration into concrete
// start/end instants in the configured location. Any parse failure falls
// back to a one-hour window starting now.
func (uc *implUseCase) eventWindow(rec meeting.MeetingRecord) (time.Time, time.Time) {
	day, err := parseDate(rec.Date)
	if err != nil {
		return uc.fallbackWindow()
	}
	clock, err := parseClock(rec.Time)
	if err != nil {
		return uc.fallbackWindow()
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, uc.loc)
	end := start.Add(time.Duration(rec.DurationMinutes) * time.Minute)
	return start, end
}

func (uc *implUseCase) fallbackWindow() (time.Time, time.Time) {
	now := uc.clock().In(uc.loc)
	return now, now.Add(time.Hour)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseClock handles the normalized extractor shapes: "3:30pm", "15:04",
// "3pm" and bare hours like "15".
func parseClock(s string) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")

	meridiem := strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm")
	switch {
	case strings.Contains(s, ":") && meridiem:
		return time.Parse("3:04pm", s)
	case strings.Contains(s, ":"):
		return time.Parse("15:04", s)
	case meridiem:
		return time.Parse("3pm", s)
	default:
		return time.Parse("15", s)
	}
}
