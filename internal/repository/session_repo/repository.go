package session_repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"slot_engine/internal/service/player"
)

type entry struct {
	info   model.SessionInfo
	player *player.Player
}

// repo Живые игровые сессии процесса
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]entry
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{sessions: make(map[string]entry)}
}

// Create Зарегистрировать сессию под новым UUID
func (r *repo) Create(_ context.Context, info model.SessionInfo, p *player.Player) (string, error) {
	id := uuid.NewString()
	info.ID = id

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[id] = entry{info: info, player: p}
	return id, nil
}

func (r *repo) Get(_ context.Context, id string) (*player.Player, model.SessionInfo, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, model.SessionInfo{}, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	return e.player, e.info, nil
}

// Delete Удалить сессию и вернуть её игрока для закрытия
func (r *repo) Delete(_ context.Context, id string) (*player.Player, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return e.player, nil
}
