package usecase

import (
	"context"
	"errors"

	"scheduling-assistant/internal/chat/repository"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

// Reset replaces the session context wholesale with a fresh one.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.repo.Save(ctx, sessionID, model.NewSessionContext(requiredSlots)); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Reset: %v", err)
		return err
	}
	uc.l.Infof(ctx, "chat.usecase.Reset: context reset for session %s", sessionID)
	return nil
}

func (uc *implUseCase) IsComplete(ctx context.Context, sessionID string) bool {
	sc, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return false
	}
	return sc.Complete
}

func (uc *implUseCase) GetContext(ctx context.Context, sessionID string) (model.SessionContext, error) {
	sc, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrContextNotFound) {
			return model.NewSessionContext(requiredSlots), nil
		}
		uc.l.Errorf(ctx, "chat.usecase.GetContext: %v", err)
		return model.SessionContext{}, err
	}
	return sc, nil
}

func (uc *implUseCase) Extract(text string) extractor.Entities {
	return uc.extractor.Extract(text)
}
