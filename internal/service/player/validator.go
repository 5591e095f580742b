package player

import (
	"fmt"

	"slot_engine/internal/model"
)

// BetValidator Внешняя проверка ставки до вращения барабанов
type BetValidator interface {
	ValidateBet(cfg *model.GameConfig, betPerLine float64) error
}

// BetValidatorFunc Функция как BetValidator
type BetValidatorFunc func(cfg *model.GameConfig, betPerLine float64) error

func (f BetValidatorFunc) ValidateBet(cfg *model.GameConfig, betPerLine float64) error {
	return f(cfg, betPerLine)
}

// AllowedBets Ставка положительна и, если список ставок задан, входит в него
var AllowedBets = BetValidatorFunc(func(cfg *model.GameConfig, betPerLine float64) error {
	if betPerLine <= 0 {
		return fmt.Errorf("%w: bet must be positive", model.ErrBetRejected)
	}
	if len(cfg.BetConfig.Bets) == 0 {
		return nil
	}
	for _, b := range cfg.BetConfig.Bets {
		if b == betPerLine {
			return nil
		}
	}
	return fmt.Errorf("%w: bet %v is not offered", model.ErrBetRejected, betPerLine)
})
