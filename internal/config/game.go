package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"slot_engine/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadGameFile Загрузить конфигурацию игры из YAML или JSON файла
func LoadGameFile(path string) (*model.GameConfig, error) {
	cfg, err := DecodeGameFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateGame(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeGameFile Разбор файла с нормализацией, но без проверки. Нужен для черновиков без лент
func DecodeGameFile(path string) (*model.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg model.GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, model.ErrConfig, err)
	}
	if cfg.ID == "" {
		cfg.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	Normalize(&cfg)
	return &cfg, nil
}

// LoadGameDir Все конфигурации игр из каталога
func LoadGameDir(dir string) ([]*model.GameConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []*model.GameConfig
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		cfg, err := LoadGameFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// ParseGameYAML Разбор YAML с нормализацией и проверкой
func ParseGameYAML(data []byte) (*model.GameConfig, error) {
	var cfg model.GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrConfig, err)
	}
	return prepare(&cfg)
}

// ParseGameJSON Разбор JSON с нормализацией и проверкой
func ParseGameJSON(data []byte) (*model.GameConfig, error) {
	var cfg model.GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrConfig, err)
	}
	return prepare(&cfg)
}

func prepare(cfg *model.GameConfig) (*model.GameConfig, error) {
	Normalize(cfg)
	if err := ValidateGame(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize Значения по умолчанию
func Normalize(cfg *model.GameConfig) {
	if cfg.WinType == "" {
		cfg.WinType = model.WinTypeLines
	}
	cfg.TargetRTP = model.RTPFraction(cfg.TargetRTP)
	if cfg.WinType == model.WinTypeLines && len(cfg.Paylines) == 0 && cfg.ReelsCount == 5 && cfg.RowsCount == 3 {
		cfg.Paylines = model.DefaultPaylines
	}
	if n := cfg.BetConfig.DefaultLines; cfg.WinType == model.WinTypeLines && n > 0 && n < len(cfg.Paylines) {
		cfg.Paylines = cfg.Paylines[:n]
	}
	if cfg.Paytable == nil {
		cfg.Paytable = map[string]float64{}
	}
	if r := cfg.FreeSpinRules; r != nil {
		if r.MultiplierMode == "" {
			r.MultiplierMode = model.MultiplierFixed
		}
		if r.BaseMultiplier == 0 {
			r.BaseMultiplier = 1
		}
		if r.BonusType == "" {
			r.BonusType = model.DefaultBonusType
		}
		if r.RetriggerMinCount == 0 {
			r.RetriggerMinCount = r.MinCount
		}
	}
}

// ValidateGame Проверка конфигурации при загрузке. Невалидные правила до спинов не доходят
func ValidateGame(cfg *model.GameConfig) error {
	if cfg.ReelsCount <= 0 || cfg.RowsCount <= 0 {
		return invalid("grid %dx%d", cfg.ReelsCount, cfg.RowsCount)
	}
	for r := 0; r < cfg.ReelsCount; r++ {
		if r >= len(cfg.ReelStrips) || len(cfg.ReelStrips[r]) == 0 {
			return invalid("reel %d has no strip", r)
		}
		if len(cfg.ReelStrips[r]) < cfg.RowsCount {
			return invalid("reel %d strip is shorter than %d rows", r, cfg.RowsCount)
		}
	}

	switch cfg.WinType {
	case model.WinTypeLines:
		if len(cfg.Paylines) == 0 {
			return invalid("lines mode requires paylines")
		}
		for i, line := range cfg.Paylines {
			if len(line) != cfg.ReelsCount {
				return invalid("payline %d length %d, want %d", i+1, len(line), cfg.ReelsCount)
			}
			for _, row := range line {
				if row < 0 || row >= cfg.RowsCount {
					return invalid("payline %d row %d out of range", i+1, row)
				}
			}
		}
	case model.WinTypeWays, model.WinTypeCluster:
	default:
		return invalid("unknown win type %q", cfg.WinType)
	}

	for key, v := range cfg.Paytable {
		if v < 0 {
			return invalid("paytable %s is negative", key)
		}
	}
	for id, info := range cfg.SymbolWeights {
		if info.Weight < 0 {
			return invalid("symbol %d has negative weight", id)
		}
	}
	for _, w := range cfg.WildRules {
		for reel, m := range w.Multipliers {
			if m < 0 {
				return invalid("wild %d multiplier on reel %d is negative", w.SymbolID, reel)
			}
		}
	}
	for _, s := range cfg.ScatterRules {
		if s.MinCount < 1 {
			return invalid("scatter %d min count %d", s.SymbolID, s.MinCount)
		}
		for n, m := range s.PayMultipliers {
			if m < 0 {
				return invalid("scatter %d pay for %d is negative", s.SymbolID, n)
			}
		}
	}
	if err := validateFreeSpins(cfg.FreeSpinRules); err != nil {
		return err
	}
	for _, j := range cfg.JackpotRules {
		if err := validateJackpot(j); err != nil {
			return err
		}
	}

	if cfg.TargetRTP < 0 || cfg.TargetRTP > 1 {
		return invalid("target rtp %v is outside [0, 1]", cfg.TargetRTP)
	}
	if cfg.MaxWinMultiplier < 0 {
		return invalid("max win multiplier is negative")
	}
	for _, b := range cfg.BetConfig.Bets {
		if b <= 0 {
			return invalid("bet %v is not positive", b)
		}
	}
	if cfg.BetConfig.CostMultiplier < 0 {
		return invalid("cost multiplier is negative")
	}
	return nil
}

func validateFreeSpins(r *model.FreeSpinRule) error {
	if r == nil {
		return nil
	}
	if r.MinCount < 1 {
		return invalid("free spins min count %d", r.MinCount)
	}
	for n, spins := range r.SpinsAwarded {
		if spins < 0 {
			return invalid("free spins for %d is negative", n)
		}
	}
	for n, spins := range r.RetriggerSpins {
		if spins < 0 {
			return invalid("retrigger spins for %d is negative", n)
		}
	}
	if r.MaxRetriggers < 0 {
		return invalid("max retriggers is negative")
	}
	switch r.MultiplierMode {
	case model.MultiplierFixed, model.MultiplierEscalating, model.MultiplierPerRetrigger:
	default:
		return invalid("unknown multiplier mode %q", r.MultiplierMode)
	}
	if r.BuyCostMultiplier < 0 {
		return invalid("bonus buy cost is negative")
	}
	if r.BaseMultiplier < 0 || r.EscalationStep < 0 || r.RetriggerMultiplierBonus < 0 {
		return invalid("free spin multipliers must not be negative")
	}
	if r.MaxMultiplier < 0 || (r.MaxMultiplier > 0 && r.MaxMultiplier < r.BaseMultiplier) {
		return invalid("max multiplier %v is below base %v", r.MaxMultiplier, r.BaseMultiplier)
	}
	return nil
}

func validateJackpot(j model.JackpotTier) error {
	if j.Name == "" {
		return invalid("jackpot tier without name")
	}
	if j.Probability < 0 || j.Probability > 1 {
		return invalid("jackpot %s probability %v", j.Name, j.Probability)
	}
	if j.SeedAmount < 0 || j.Pool < 0 {
		return invalid("jackpot %s amount is negative", j.Name)
	}
	if j.QualifyingBet < 0 {
		return invalid("jackpot %s qualifying bet is negative", j.Name)
	}
	if j.ContributionRate < 0 || j.ContributionRate >= 1 {
		return invalid("jackpot %s contribution rate %v", j.Name, j.ContributionRate)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrConfig, fmt.Sprintf(format, args...))
}
