package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"slot_engine/internal/api"
	gameAPI "slot_engine/internal/api/game"
	sessionAPI "slot_engine/internal/api/session"
	"slot_engine/internal/config"
	"slot_engine/internal/config/env"
	"slot_engine/internal/repository"
	"slot_engine/internal/repository/game_cache_repo"
	"slot_engine/internal/repository/game_repo"
	"slot_engine/internal/repository/session_repo"
	"slot_engine/internal/service"
	"slot_engine/internal/service/game"
	"slot_engine/internal/service/session"
	"slot_engine/pkg/logger"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logging
	logConfig config.LogConfig
	logger    *zap.Logger

	// JWT
	jwtConfig config.JWTConfig

	// Game bits
	gamesConfig config.GamesConfig
	gameRepo    repository.GameRepository
	gameServ    service.GameService
	gameHand    *gameAPI.Handler

	// Session bits
	sessionRepo repository.SessionRepository
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogConfig() config.LogConfig {
	if sp.logConfig == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logConfig = cfg
	}
	return sp.logConfig
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogConfig().Env(), sp.LogConfig().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// UseDB Включена ли работа с базой
func (sp *ServiceProvider) UseDB() bool {
	return sp.PgConfig().DSN() != ""
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse pg dsn: " + err.Error())
		}
		if n := sp.PgConfig().MaxConns(); n > 0 {
			poolCfg.MaxConns = n
		}
		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// TXManager Менеджер транзакций, nil без базы
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil && sp.UseDB() {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) GamesConfig() config.GamesConfig {
	if sp.gamesConfig == nil {
		cfg, err := env.NewGamesConfig()
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesConfig = cfg
	}
	return sp.gamesConfig
}

// GameRepository Postgres при заданном DSN, иначе память с играми из каталога
func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		if sp.UseDB() {
			sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
		} else {
			r, err := game_cache_repo.NewGameCacheRepositoryFromDir(ctx, sp.GamesConfig().Dir())
			if err != nil {
				panic("failed to load games: " + err.Error())
			}
			sp.gameRepo = r
		}
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.GameRepository(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.gameServ
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.GameRepository(ctx),
			sp.SessionRepository(),
			sp.JWTConfig(),
			sp.GamesConfig().StatsWindow(),
			sp.Logger(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv:   sp.SessionService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = api.NewRouter(api.RouterDeps{
			Games:     sp.GameHandler(ctx),
			Sessions:  sp.SessionHandler(ctx),
			SecretKey: sp.JWTConfig().AccessTokenSecretKey(),
			Logger:    sp.Logger(),
		})
	}

	return sp.router
}
