package usecase

import (
	"context"
	"errors"
	"time"

	"google.golang.org/api/googleapi"

	"scheduling-assistant/internal/meeting"
	"scheduling-assistant/internal/meeting/repository"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/gcalendar"
)

func (uc *implUseCase) Schedule(ctx context.Context, sessionID string, sc model.SessionContext) (string, error) {
	existing, err := uc.repo.GetMeetingBySession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule.GetMeetingBySession: %v", err)
		return "", err
	}
	if existing.EventID != "" {
		// Already scheduled for this session, do not create a duplicate.
		return existing.JoinLink, nil
	}

	rec, err := meeting.Prepare(sc)
	if err != nil {
		uc.l.Warnf(ctx, "meeting.usecase.Schedule.Prepare: %v", err)
		return "", err
	}

	if uc.calendar == nil {
		return "", meeting.ErrNoCalendar
	}

	start, end := uc.eventWindow(rec)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     rec.Subject,
		Description: rec.Body,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.loc.String(),
		Attendees:   rec.Attendees,
	})
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule.CreateEvent: %v", err)
		if isAuthError(err) {
			if serr := uc.repo.SetConnected(ctx, sessionID, false); serr != nil {
				uc.l.Errorf(ctx, "meeting.usecase.Schedule.SetConnected: %v", serr)
			}
			return "", meeting.ErrAuth
		}
		return "", err
	}

	if _, err := uc.repo.CreateMeeting(ctx, repository.CreateMeetingOptions{
		SessionID: sessionID,
		EventID:   event.ID,
		Subject:   rec.Subject,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		JoinLink:  event.HtmlLink,
	}); err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule.CreateMeeting: %v", err)
		return "", err
	}
	if err := uc.repo.SetConnected(ctx, sessionID, true); err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule.SetConnected: %v", err)
	}

	return event.HtmlLink, nil
}

// isAuthError reports whether the calendar API rejected our credentials.
func isAuthError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 401 || apiErr.Code == 403
	}
	return false
}
