package freespin

import (
	"fmt"

	"slot_engine/internal/model"
	"slot_engine/internal/service/evaluator"
)

// Чистые переходы над состоянием бонусного раунда. Ничего не хранят и не вызывают наблюдателей

// Start Новое состояние при запуске бонуса
func Start(rule *model.FreeSpinRule, spins int, multiplier, triggerBet float64) model.FreeSpinState {
	if multiplier <= 0 {
		multiplier = baseMultiplier(rule)
	}
	return model.FreeSpinState{
		Phase:             model.PhaseIntro,
		Active:            true,
		TotalSpins:        spins,
		RemainingSpins:    spins,
		CurrentMultiplier: capMultiplier(rule, multiplier),
		TriggerBet:        triggerBet,
	}
}

// BeginSpin Переход в фазу спина: номер спина растёт, остаток уменьшается, множитель пересчитывается
func BeginSpin(rule *model.FreeSpinRule, s model.FreeSpinState) (model.FreeSpinState, error) {
	if !s.Active {
		return s, model.ErrBonusInactive
	}
	if s.Phase != model.PhaseIntro && s.Phase != model.PhaseRetriggerCheck {
		return s, fmt.Errorf("free spins: cannot start spin from phase %s", s.Phase)
	}
	if s.RemainingSpins <= 0 {
		return s, fmt.Errorf("free spins: no spins remaining")
	}

	s.Phase = model.PhaseSpin
	s.CurrentSpin++
	s.RemainingSpins--
	if rule != nil && rule.MultiplierMode == model.MultiplierEscalating {
		step := rule.EscalationStep
		s.CurrentMultiplier = capMultiplier(rule, baseMultiplier(rule)+float64(s.CurrentSpin-1)*step)
	}
	return s, nil
}

// CompleteSpin Учесть выигрыш спина, уже умноженный на текущий множитель, и перейти к проверке ретриггера
func CompleteSpin(s model.FreeSpinState, record model.FreeSpinRecord) model.FreeSpinState {
	s.Phase = model.PhaseRetriggerCheck
	s.CumulativeWin += record.Win
	history := make([]model.FreeSpinRecord, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = append(history, record)
	return s
}

// ApplyRetrigger Добавить спины за повторный запуск. Лимит ретриггеров это правило игры, а не ошибка
func ApplyRetrigger(rule *model.FreeSpinRule, s model.FreeSpinState, count int) (model.FreeSpinState, int) {
	if rule == nil || !rule.RetriggerEnabled || s.RetriggerCount >= rule.MaxRetriggers {
		return s, 0
	}
	minCount := rule.RetriggerMinCount
	if minCount <= 0 {
		minCount = rule.MinCount
	}
	if count < minCount || count == 0 {
		return s, 0
	}
	added := evaluator.SpinsFor(rule.RetriggerSpins, count, minCount)
	if added <= 0 {
		return s, 0
	}

	s.RemainingSpins += added
	s.TotalSpins += added
	s.RetriggerCount++
	if rule.MultiplierMode == model.MultiplierPerRetrigger {
		s.CurrentMultiplier = capMultiplier(rule, s.CurrentMultiplier+rule.RetriggerMultiplierBonus)
	}
	if n := len(s.History); n > 0 {
		history := make([]model.FreeSpinRecord, n)
		copy(history, s.History)
		history[n-1].Retriggered = true
		history[n-1].SpinsAdded = added
		s.History = history
	}
	return s, added
}

// Finish Переход в OUTRO и итог раунда. Возможен только когда спины закончились
func Finish(s model.FreeSpinState) (model.FreeSpinState, model.FreeSpinSummary, error) {
	if !s.Active {
		return s, model.FreeSpinSummary{}, model.ErrBonusInactive
	}
	if s.RemainingSpins > 0 {
		return s, model.FreeSpinSummary{}, fmt.Errorf("free spins: %d spins remaining", s.RemainingSpins)
	}
	s.Phase = model.PhaseOutro
	return s, Summarize(s), nil
}

// Summarize Итог по текущему состоянию
func Summarize(s model.FreeSpinState) model.FreeSpinSummary {
	history := make([]model.FreeSpinRecord, len(s.History))
	copy(history, s.History)
	return model.FreeSpinSummary{
		TotalSpins:      s.CurrentSpin,
		CumulativeWin:   s.CumulativeWin,
		RetriggerCount:  s.RetriggerCount,
		FinalMultiplier: s.CurrentMultiplier,
		History:         history,
	}
}

// Idle Исходное состояние
func Idle() model.FreeSpinState {
	return model.FreeSpinState{Phase: model.PhaseIdle}
}

func baseMultiplier(rule *model.FreeSpinRule) float64 {
	if rule == nil || rule.BaseMultiplier <= 0 {
		return 1
	}
	return rule.BaseMultiplier
}

// capMultiplier Множитель не превышает maxMultiplier, если он задан
func capMultiplier(rule *model.FreeSpinRule, m float64) float64 {
	if rule != nil && rule.MaxMultiplier > 0 && m > rule.MaxMultiplier {
		return rule.MaxMultiplier
	}
	return m
}
