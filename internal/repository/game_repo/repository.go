package game_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"

	"slot_engine/internal/model"
	"slot_engine/internal/repository"
)

const (
	table      = "game_configs"
	colID      = "id"
	colName    = "name"
	colConfig  = "config"
	colVersion = "version"

	versionsTable = "game_config_versions"
	colGameID     = "game_id"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Save - сохраняет конфигурацию игры, при повторном сохранении увеличивает версию.
// Возвращает номер сохранённой версии
func (r *repo) Save(ctx context.Context, cfg *model.GameConfig) (int, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colName, colConfig, colVersion).
		Values(cfg.ID, cfg.Name, data, 1).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colName + " = EXCLUDED." + colName + ", " +
			colConfig + " = EXCLUDED." + colConfig + ", " +
			colVersion + " = " + table + "." + colVersion + " + 1, " +
			"updated_at = now() RETURNING " + colVersion).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var version int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// AppendVersion - добавляет запись в журнал версий конфигурации
func (r *repo) AppendVersion(ctx context.Context, cfg *model.GameConfig, version int) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	query := sq.Insert(versionsTable).
		Columns(colGameID, colVersion, colConfig).
		Values(cfg.ID, version, data).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// Get - возвращает последнюю версию конфигурации игры
func (r *repo) Get(ctx context.Context, id string) (*model.GameConfig, error) {
	query := sq.Select(colConfig).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
		}
		return nil, err
	}
	return decode(data)
}

// List - все игры, упорядоченные по ID
func (r *repo) List(ctx context.Context) ([]*model.GameConfig, error) {
	query := sq.Select(colConfig).
		From(table).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.GameConfig
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		cfg, err := decode(data)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// conn Транзакция из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func decode(data []byte) (*model.GameConfig, error) {
	var cfg model.GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
