package repository

import (
	"context"

	"slot_engine/internal/model"
	"slot_engine/internal/service/player"
)

type GameRepository interface {
	Save(ctx context.Context, cfg *model.GameConfig) (version int, err error)
	AppendVersion(ctx context.Context, cfg *model.GameConfig, version int) error
	Get(ctx context.Context, id string) (*model.GameConfig, error)
	List(ctx context.Context) ([]*model.GameConfig, error)
}

type SessionRepository interface {
	Create(ctx context.Context, info model.SessionInfo, p *player.Player) (string, error)
	Get(ctx context.Context, id string) (*player.Player, model.SessionInfo, error)
	Delete(ctx context.Context, id string) (*player.Player, error)
}
