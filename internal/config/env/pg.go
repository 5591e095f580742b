package env

import (
	"fmt"

	"slot_engine/internal/config"
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

// NewPGConfig Пустой DSN означает работу без базы, конфигурации игр берутся из каталога
func NewPGConfig() (config.PGConfig, error) {
	s, err := process()
	if err != nil {
		return nil, err
	}
	if s.PGMaxConns < 0 {
		return nil, fmt.Errorf("invalid pg max conns: %d", s.PGMaxConns)
	}
	return &pgConfig{dsn: s.PGDSN, maxConns: s.PGMaxConns}, nil
}

func (cfg *pgConfig) DSN() string     { return cfg.dsn }
func (cfg *pgConfig) MaxConns() int32 { return cfg.maxConns }
