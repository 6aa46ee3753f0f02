package usecase

import (
	"context"

	"scheduling-assistant/internal/meeting"
)

func (uc *implUseCase) Cancel(ctx context.Context, sessionID string) error {
	m, err := uc.repo.GetMeetingBySession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Cancel.GetMeetingBySession: %v", err)
		return err
	}
	if m.EventID == "" {
		return meeting.ErrNotScheduled
	}

	if uc.calendar != nil {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, m.EventID); err != nil {
			uc.l.Errorf(ctx, "meeting.usecase.Cancel.DeleteEvent: %v", err)
			if isAuthError(err) {
				return meeting.ErrAuth
			}
			return err
		}
	}

	if err := uc.repo.DeleteMeeting(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Cancel.DeleteMeeting: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Get(ctx context.Context, sessionID string) (meeting.Meeting, error) {
	m, err := uc.repo.GetMeetingBySession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Get.GetMeetingBySession: %v", err)
		return meeting.Meeting{}, err
	}
	if m.EventID == "" {
		return meeting.Meeting{}, meeting.ErrNotScheduled
	}
	return m, nil
}
