package game

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"slot_engine/internal/service"
)

type serv struct {
	repo      repository.GameRepository
	txManager trm.Manager
	logger    *zap.Logger
}

// NewGameService txManager может быть nil для хранилища в памяти
func NewGameService(
	repo repository.GameRepository,
	txManager trm.Manager,
	logger *zap.Logger,
) service.GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Import Проверить конфигурацию и сохранить её вместе с записью в журнале версий
func (s *serv) Import(ctx context.Context, cfg *model.GameConfig) (int, error) {
	if cfg.ID == "" {
		return 0, fmt.Errorf("%w: game id is empty", model.ErrConfig)
	}
	config.Normalize(cfg)
	if err := config.ValidateGame(cfg); err != nil {
		return 0, err
	}

	var version int
	err := s.inTx(ctx, func(txCtx context.Context) error {
		v, err := s.repo.Save(txCtx, cfg)
		if err != nil {
			return err
		}
		version = v
		return s.repo.AppendVersion(txCtx, cfg, v)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("game imported", zap.String("game", cfg.ID), zap.Int("version", version))
	return version, nil
}

func (s *serv) Get(ctx context.Context, id string) (*model.GameConfig, error) {
	return s.repo.Get(ctx, id)
}

func (s *serv) List(ctx context.Context) ([]*model.GameConfig, error) {
	return s.repo.List(ctx)
}

func (s *serv) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.Do(ctx, fn)
}
