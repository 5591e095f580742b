package env

import "slot_engine/internal/config"

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	s, err := process()
	if err != nil {
		return nil, err
	}
	return &httpConfig{address: s.HTTPAddress}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
