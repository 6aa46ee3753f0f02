package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-assistant/internal/chat/repository"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/log"
)

const defaultMaxSessions = 10000

// implRepository is an in-memory, TTL'd context store. The LRU guards its
// own map; contexts are cloned on both read and write so callers never
// share slot slices with the store.
type implRepository struct {
	l        log.Logger
	contexts *expirable.LRU[string, model.SessionContext]
}

// New creates an in-memory ContextRepository. Sessions idle longer than ttl
// are evicted.
func New(l log.Logger, ttl time.Duration) repository.ContextRepository {
	return &implRepository{
		l:        l,
		contexts: expirable.NewLRU[string, model.SessionContext](defaultMaxSessions, nil, ttl),
	}
}

func (r *implRepository) Get(ctx context.Context, sessionID string) (model.SessionContext, error) {
	sc, ok := r.contexts.Get(sessionID)
	if !ok {
		return model.SessionContext{}, repository.ErrContextNotFound
	}
	return sc.Clone(), nil
}

func (r *implRepository) Save(ctx context.Context, sessionID string, sc model.SessionContext) error {
	r.contexts.Add(sessionID, sc.Clone())
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	r.contexts.Remove(sessionID)
	return nil
}
