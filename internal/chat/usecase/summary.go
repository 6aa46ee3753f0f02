package usecase

import (
	"context"
	"fmt"
	"strings"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

// generateSummary renders the human-readable meeting summary. Attendees
// without a recorded email get one last resolver lookup; a unique hit is
// cached into the email map, anything else becomes a trailing note.
func (uc *implUseCase) generateSummary(ctx context.Context, sc *model.SessionContext) string {
	date := slotOrDefault(sc, extractor.EntityDate, "(no date specified)")
	timeStr := slotOrDefault(sc, extractor.EntityTime, "(no time specified)")
	duration := slotOrDefault(sc, extractor.EntityDuration, "(no duration specified)")

	var formatted, missing []string
	for _, attendee := range sc.Slots[extractor.EntityAttendee] {
		if isQualifiedAttendee(attendee) {
			formatted = append(formatted, attendee)
			continue
		}
		if email, ok := sc.AttendeeEmails[attendee]; ok {
			formatted = append(formatted, fmt.Sprintf("%s (%s)", attendee, email))
			continue
		}

		contacts, err := uc.contacts.FindByName(ctx, attendee)
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.generateSummary: %v", err)
		}
		switch {
		case err == nil && len(contacts) == 1:
			email := contacts[0].Email
			formatted = append(formatted, fmt.Sprintf("%s (%s)", attendee, email))
			sc.AttendeeEmails[attendee] = email
		case err == nil && len(contacts) > 1:
			// Should not happen once disambiguation ran; render a marker
			// instead of guessing.
			missing = append(missing, attendee)
			formatted = append(formatted, fmt.Sprintf("%s (email selection needed)", attendee))
		default:
			missing = append(missing, attendee)
			formatted = append(formatted, fmt.Sprintf("%s (no email found)", attendee))
		}
	}

	summary := fmt.Sprintf("Meeting scheduled for %s at %s, lasting %s, with %s.",
		date, timeStr, duration, strings.Join(formatted, ", "))

	switch {
	case len(missing) == 1:
		summary += fmt.Sprintf(" Note: No email was found for %s.", missing[0])
	case len(missing) > 1:
		summary += fmt.Sprintf(" Note: No emails were found for these attendees: %s.", strings.Join(missing, ", "))
	}
	return summary
}

func slotOrDefault(sc *model.SessionContext, slot, fallback string) string {
	if values := sc.Slots[slot]; len(values) > 0 {
		return values[0]
	}
	return fallback
}
