package usecase

import (
	"math/rand"
	"sync"

	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/chat/repository"
	"scheduling-assistant/pkg/extractor"
	"scheduling-assistant/pkg/log"
)

// requiredSlots is the fixed fill order; missing-slot prompts follow it.
var requiredSlots = []string{
	extractor.EntityDate,
	extractor.EntityTime,
	extractor.EntityDuration,
	extractor.EntityAttendee,
}

type implUseCase struct {
	l         log.Logger
	extractor *extractor.Extractor
	contacts  chat.ContactResolver
	scheduler chat.MeetingScheduler
	repo      repository.ContextRepository
	rand      func(n int) int

	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

// New creates the conversation engine use case. scheduler may be nil when
// no calendar is configured; completion responses then carry no suffix.
func New(
	l log.Logger,
	ex *extractor.Extractor,
	contacts chat.ContactResolver,
	scheduler chat.MeetingScheduler,
	repo repository.ContextRepository,
) chat.UseCase {
	return &implUseCase{
		l:         l,
		extractor: ex,
		contacts:  contacts,
		scheduler: scheduler,
		repo:      repo,
		rand:      rand.Intn,
		sessions:  make(map[string]*sync.Mutex),
	}
}

// sessionLock serializes turns per session; turns for different sessions
// run concurrently.
func (uc *implUseCase) sessionLock(sessionID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	m, ok := uc.sessions[sessionID]
	if !ok {
		m = &sync.Mutex{}
		uc.sessions[sessionID] = m
	}
	return m
}
