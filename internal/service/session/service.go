package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"slot_engine/internal/repository/stats_repo"
	"slot_engine/internal/rng"
	"slot_engine/internal/service"
	"slot_engine/internal/service/freespin"
	"slot_engine/internal/service/player"
	"slot_engine/pkg/token"
)

type serv struct {
	games       repository.GameRepository
	sessions    repository.SessionRepository
	jwtConfig   config.JWTConfig
	statsWindow int
	logger      *zap.Logger
}

func NewSessionService(
	games repository.GameRepository,
	sessions repository.SessionRepository,
	jwtConfig config.JWTConfig,
	statsWindow int,
	logger *zap.Logger,
) service.SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		games:       games,
		sessions:    sessions,
		jwtConfig:   jwtConfig,
		statsWindow: statsWindow,
		logger:      logger,
	}
}

// Open Новая доказуемо честная сессия. Клиенту отдаётся только хеш серверного сида
func (s *serv) Open(ctx context.Context, gameID, clientSeed string) (model.SessionInfo, error) {
	cfg, err := s.games.Get(ctx, gameID)
	if err != nil {
		return model.SessionInfo{}, err
	}

	serverSeed, err := rng.GenerateServerSeed()
	if err != nil {
		return model.SessionInfo{}, err
	}
	if clientSeed == "" {
		clientSeed = uuid.NewString()
	}
	fair := rng.NewFair(serverSeed, clientSeed, 0)

	logger := s.logger.With(zap.String("game", cfg.ID))
	p, err := player.New(cfg, player.Options{
		Fair:      fair,
		Stats:     stats_repo.NewTracker(s.statsWindow),
		Observers: []freespin.Observer{freespin.NewLogObserver(logger)},
		Logger:    logger,
	})
	if err != nil {
		return model.SessionInfo{}, err
	}

	info := model.SessionInfo{
		GameID:         cfg.ID,
		ServerSeedHash: fair.ServerSeedHash(),
		ClientSeed:     clientSeed,
	}
	info.ID, err = s.sessions.Create(ctx, info, p)
	if err != nil {
		return model.SessionInfo{}, err
	}

	info.AccessToken, err = token.GenerateAccessToken(info, s.jwtConfig.AccessTokenSecretKey(), s.jwtConfig.AccessTokenDuration())
	if err != nil {
		_, _ = s.sessions.Delete(ctx, info.ID)
		return model.SessionInfo{}, err
	}

	logger.Info("session opened", zap.String("session", info.ID))
	return info, nil
}

// Spin Платный спин или следующий фриспин сессии
func (s *serv) Spin(ctx context.Context, sessionID string, betPerLine float64) (*model.PlayResult, error) {
	p, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return p.Spin(ctx, betPerLine)
}

// BuyBonus Купить бонусный раунд
func (s *serv) BuyBonus(ctx context.Context, sessionID string, betPerLine float64) (*model.PlayResult, error) {
	p, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return p.BuyBonus(ctx, betPerLine)
}

func (s *serv) Stats(ctx context.Context, sessionID string) (model.SessionStats, error) {
	p, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.SessionStats{}, err
	}
	return p.SessionStats(), nil
}

func (s *serv) FreeSpins(ctx context.Context, sessionID string) (model.FreeSpinState, error) {
	p, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.FreeSpinState{}, err
	}
	return p.FreeSpinState(), nil
}

// Close Закрыть сессию и раскрыть серверный сид
func (s *serv) Close(ctx context.Context, sessionID string) (model.SessionClose, error) {
	p, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		return model.SessionClose{}, err
	}
	res := p.Close()
	s.logger.Info("session closed",
		zap.String("session", sessionID),
		zap.Int("spins", res.Stats.TotalSpins),
		zap.Float64("rtp", res.Stats.SessionRTP),
	)
	return res, nil
}
