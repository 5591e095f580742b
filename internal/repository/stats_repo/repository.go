package stats_repo

import (
	"sync"

	"slot_engine/internal/model"
	repoModel "slot_engine/internal/repository/stats_repo/model"
)

// DefaultWindowSize Размер скользящего окна по умолчанию
const DefaultWindowSize = 500

// Tracker Накопительная и скользящая статистика одной игровой сессии
type Tracker struct {
	mtx   sync.RWMutex
	state repoModel.TrackerState
}

// NewTracker Конструктор трекера. windowSize <= 0 означает размер по умолчанию
func NewTracker(windowSize int) *Tracker {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Tracker{
		state: repoModel.TrackerState{
			Histogram:  make(map[string]int, len(model.HitClasses)),
			Window:     make([]repoModel.Sample, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// RecordSpin Учесть платный спин
func (t *Tracker) RecordSpin(bet, win float64) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.state.TotalSpins++
	if win > 0 {
		t.state.HitCount++
	}
	t.record(bet, win, model.ClassifyHit(win, bet))
}

// RecordFreeSpin Учесть фриспин: ставка 0, класс по ставке запуска, платные спины не растут
func (t *Tracker) RecordFreeSpin(win, triggerBet float64) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.state.FreeSpins++
	t.record(0, win, model.ClassifyHit(win, triggerBet))
}

func (t *Tracker) record(bet, win float64, class model.HitClass) {
	t.state.TotalBet += bet
	t.state.TotalWin += win
	if win > t.state.MaxWin {
		t.state.MaxWin = win
	}
	t.state.Histogram[string(class)]++

	// Добавляем спин в окно
	t.state.Window = append(t.state.Window, repoModel.Sample{Bet: bet, Win: win})
	t.state.WindowBet += bet
	t.state.WindowWin += win

	// Поддерживаем размер окна
	if len(t.state.Window) > t.state.WindowSize {
		old := t.state.Window[0]
		t.state.WindowBet -= old.Bet
		t.state.WindowWin -= old.Win
		t.state.Window = append(t.state.Window[:0], t.state.Window[1:]...)
	}
}

// SessionRTP totalWin/totalBet в процентах
func (t *Tracker) SessionRTP() float64 {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return percent(t.state.TotalWin, t.state.TotalBet)
}

// RollingRTP RTP только по окну
func (t *Tracker) RollingRTP() float64 {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return percent(t.state.WindowWin, t.state.WindowBet)
}

// HitFrequency Доля платных спинов с выигрышем в процентах
func (t *Tracker) HitFrequency() float64 {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return percent(float64(t.state.HitCount), float64(t.state.TotalSpins))
}

// Snapshot Неизменяемая копия статистики
func (t *Tracker) Snapshot() model.SessionStats {
	t.mtx.RLock()
	defer t.mtx.RUnlock()

	hist := make(map[model.HitClass]int, len(model.HitClasses))
	for _, c := range model.HitClasses {
		hist[c] = t.state.Histogram[string(c)]
	}
	window := make([]model.SpinSample, len(t.state.Window))
	for i, s := range t.state.Window {
		window[i] = model.SpinSample{Bet: s.Bet, Win: s.Win}
	}

	return model.SessionStats{
		TotalSpins:   t.state.TotalSpins,
		FreeSpins:    t.state.FreeSpins,
		TotalBet:     t.state.TotalBet,
		TotalWin:     t.state.TotalWin,
		MaxWin:       t.state.MaxWin,
		HitCount:     t.state.HitCount,
		Histogram:    hist,
		Window:       window,
		WindowSize:   t.state.WindowSize,
		SessionRTP:   percent(t.state.TotalWin, t.state.TotalBet),
		RollingRTP:   percent(t.state.WindowWin, t.state.WindowBet),
		HitFrequency: percent(float64(t.state.HitCount), float64(t.state.TotalSpins)),
	}
}

func percent(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b * 100
}
