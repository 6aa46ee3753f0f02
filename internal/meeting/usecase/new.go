package usecase

import (
	"time"

	"scheduling-assistant/internal/meeting"
	"scheduling-assistant/internal/meeting/repository"
	"scheduling-assistant/pkg/gcalendar"
	"scheduling-assistant/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	calendar   *gcalendar.Client
	repo       repository.Repository
	loc        *time.Location
	calendarID string
	clock      func() time.Time
}

// New creates the meeting use case. calendar may be nil when no Google
// credentials are configured; Schedule then reports ErrNoCalendar.
func New(l log.Logger, calendar *gcalendar.Client, repo repository.Repository, timezone, calendarID string) meeting.UseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:          l,
		calendar:   calendar,
		repo:       repo,
		loc:        loc,
		calendarID: calendarID,
		clock:      time.Now,
	}
}
