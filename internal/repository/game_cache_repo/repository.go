package game_cache_repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
)

type entry struct {
	cfg     *model.GameConfig
	version int
}

// repo Хранилище конфигураций в памяти, используется без базы данных
type repo struct {
	mtx      sync.RWMutex
	games    map[string]entry
	versions map[string][]*model.GameConfig
}

func NewGameCacheRepository() repository.GameRepository {
	return &repo{
		games:    make(map[string]entry),
		versions: make(map[string][]*model.GameConfig),
	}
}

// NewGameCacheRepositoryFromDir Хранилище с играми из каталога YAML и JSON файлов
func NewGameCacheRepositoryFromDir(ctx context.Context, dir string) (repository.GameRepository, error) {
	games, err := config.LoadGameDir(dir)
	if err != nil {
		return nil, err
	}
	r := NewGameCacheRepository()
	for _, g := range games {
		version, err := r.Save(ctx, g)
		if err != nil {
			return nil, err
		}
		if err := r.AppendVersion(ctx, g, version); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Save Сохранить конфигурацию, повторное сохранение увеличивает версию
func (r *repo) Save(_ context.Context, cfg *model.GameConfig) (int, error) {
	if cfg.ID == "" {
		return 0, fmt.Errorf("%w: game id is empty", model.ErrConfig)
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e := r.games[cfg.ID]
	e.cfg = cfg
	e.version++
	r.games[cfg.ID] = e
	return e.version, nil
}

// AppendVersion Журнал версий
func (r *repo) AppendVersion(_ context.Context, cfg *model.GameConfig, _ int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.versions[cfg.ID] = append(r.versions[cfg.ID], cfg)
	return nil
}

func (r *repo) Get(_ context.Context, id string) (*model.GameConfig, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	return e.cfg, nil
}

// List Все игры по возрастанию ID
func (r *repo) List(_ context.Context) ([]*model.GameConfig, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]*model.GameConfig, 0, len(r.games))
	for _, e := range r.games {
		out = append(out, e.cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
