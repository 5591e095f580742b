package freespin

import (
	"go.uber.org/zap"

	"slot_engine/internal/model"
)

// Observer Подписчик на события бонусного раунда
type Observer interface {
	OnTrigger(state model.FreeSpinState)
	OnSpinStart(state model.FreeSpinState)
	OnSpinComplete(record model.FreeSpinRecord, state model.FreeSpinState)
	OnRetrigger(added int, state model.FreeSpinState)
	OnComplete(summary model.FreeSpinSummary)
}

// BaseObserver Пустая реализация для встраивания
type BaseObserver struct{}

func (BaseObserver) OnTrigger(model.FreeSpinState)                            {}
func (BaseObserver) OnSpinStart(model.FreeSpinState)                          {}
func (BaseObserver) OnSpinComplete(model.FreeSpinRecord, model.FreeSpinState) {}
func (BaseObserver) OnRetrigger(int, model.FreeSpinState)                     {}
func (BaseObserver) OnComplete(model.FreeSpinSummary)                         {}

// Observers Рассылка события всем подписчикам по порядку
type Observers []Observer

func (o Observers) OnTrigger(state model.FreeSpinState) {
	for _, ob := range o {
		ob.OnTrigger(state)
	}
}

func (o Observers) OnSpinStart(state model.FreeSpinState) {
	for _, ob := range o {
		ob.OnSpinStart(state)
	}
}

func (o Observers) OnSpinComplete(record model.FreeSpinRecord, state model.FreeSpinState) {
	for _, ob := range o {
		ob.OnSpinComplete(record, state)
	}
}

func (o Observers) OnRetrigger(added int, state model.FreeSpinState) {
	for _, ob := range o {
		ob.OnRetrigger(added, state)
	}
}

func (o Observers) OnComplete(summary model.FreeSpinSummary) {
	for _, ob := range o {
		ob.OnComplete(summary)
	}
}

// LogObserver Пишет события раунда в лог
type LogObserver struct {
	BaseObserver
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (l *LogObserver) OnTrigger(state model.FreeSpinState) {
	l.logger.Info("free spins triggered",
		zap.Int("spins", state.TotalSpins),
		zap.Float64("multiplier", state.CurrentMultiplier),
	)
}

func (l *LogObserver) OnRetrigger(added int, state model.FreeSpinState) {
	l.logger.Info("free spins retriggered",
		zap.Int("added", added),
		zap.Int("remaining", state.RemainingSpins),
		zap.Int("retriggers", state.RetriggerCount),
	)
}

func (l *LogObserver) OnComplete(summary model.FreeSpinSummary) {
	l.logger.Info("free spins completed",
		zap.Int("spins", summary.TotalSpins),
		zap.Float64("win", summary.CumulativeWin),
		zap.Int("retriggers", summary.RetriggerCount),
		zap.Float64("final_multiplier", summary.FinalMultiplier),
	)
}
