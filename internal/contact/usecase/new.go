package usecase

import (
	"scheduling-assistant/internal/contact/repository"
	"scheduling-assistant/pkg/log"
)

// implUseCase is the private implementation of contact.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new contact UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
