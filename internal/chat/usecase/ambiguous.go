package usecase

import (
	"context"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

// findAmbiguousAttendee scans the ATTENDEE slot for the first raw name that
// still resolves to more than one contact. Canonical "Name (email)" entries
// and names with a recorded email selection are skipped.
func (uc *implUseCase) findAmbiguousAttendee(ctx context.Context, sc model.SessionContext) (string, []model.Contact, bool) {
	for _, attendee := range sc.Slots[extractor.EntityAttendee] {
		if isQualifiedAttendee(attendee) {
			continue
		}
		if _, ok := sc.AttendeeEmails[attendee]; ok {
			continue
		}
		contacts, err := uc.contacts.FindByName(ctx, attendee)
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.findAmbiguousAttendee: %v", err)
			continue
		}
		if len(contacts) > 1 {
			return attendee, contacts, true
		}
	}
	return "", nil, false
}
