package meeting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

const defaultDurationMinutes = 30

var attendeeEmailRegex = regexp.MustCompile(`\(([^)]+@[^)]+)\)`)

// Prepare translates a session context into a MeetingRecord for the
// calendar collaborator. Attendee emails are pulled from the canonical
// "Name (email)" slot values; entries without an email are skipped.
func Prepare(sc model.SessionContext) (MeetingRecord, error) {
	if !sc.Complete {
		return MeetingRecord{}, ErrIncompleteContext
	}

	date := firstSlotValue(sc, extractor.EntityDate)
	timeStr := firstSlotValue(sc, extractor.EntityTime)
	duration := firstSlotValue(sc, extractor.EntityDuration)
	attendees := sc.Slots[extractor.EntityAttendee]

	var emails []string
	for _, attendee := range attendees {
		if m := attendeeEmailRegex.FindStringSubmatch(attendee); m != nil {
			emails = append(emails, m[1])
		}
	}

	return MeetingRecord{
		Subject: fmt.Sprintf("Meeting on %s at %s", date, timeStr),
		Body: fmt.Sprintf(
			"Meeting scheduled via Scheduling Assistant\n\nDate: %s\nTime: %s\nDuration: %s\nAttendees: %s",
			date, timeStr, duration, strings.Join(attendees, ", "),
		),
		Date:            date,
		Time:            timeStr,
		DurationMinutes: durationToMinutes(duration),
		Attendees:       emails,
	}, nil
}

// durationToMinutes converts normalized durations ("45 mins", "2 hours")
// to minutes, defaulting when the value cannot be parsed.
func durationToMinutes(duration string) int {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(duration)))
	if len(parts) == 0 {
		return defaultDurationMinutes
	}
	value, err := strconv.Atoi(parts[0])
	if err != nil || value <= 0 {
		return defaultDurationMinutes
	}
	if len(parts) > 1 && strings.HasPrefix(parts[1], "hour") {
		return value * 60
	}
	return value
}

func firstSlotValue(sc model.SessionContext, slot string) string {
	if values := sc.Slots[slot]; len(values) > 0 {
		return values[0]
	}
	return ""
}
