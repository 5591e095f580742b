package freespin

import (
	"context"
	"fmt"

	"slot_engine/internal/model"
)

// Cycler Полный цикл барабанов и оценки с заданным множителем
type Cycler interface {
	Cycle(multiplier float64) (model.SpinResult, model.WinEvaluation)
}

// CyclerFunc Функция как Cycler
type CyclerFunc func(multiplier float64) (model.SpinResult, model.WinEvaluation)

func (f CyclerFunc) Cycle(multiplier float64) (model.SpinResult, model.WinEvaluation) {
	return f(multiplier)
}

// Recorder Получает записи истории ровно один раз
type Recorder func(triggerBet float64, records []model.FreeSpinRecord)

// Session Контроллер бонусного раунда. Не потокобезопасен, принадлежит одной игровой сессии
type Session struct {
	rule      *model.FreeSpinRule
	state     model.FreeSpinState
	observers Observers
	recorder  Recorder
}

// NewSession Новый контроллер в состоянии IDLE
func NewSession(rule *model.FreeSpinRule, recorder Recorder, observers ...Observer) *Session {
	return &Session{
		rule:      rule,
		state:     Idle(),
		observers: observers,
		recorder:  recorder,
	}
}

// Subscribe Добавить наблюдателя
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Trigger Запуск раунда на spins спинов. Непереданные в статистику записи прошлого раунда сбрасываются в неё
func (s *Session) Trigger(spins int, multiplier, triggerBet float64) error {
	if s.rule == nil {
		return fmt.Errorf("%w: game has no free spin rules", model.ErrConfig)
	}
	if spins <= 0 {
		return fmt.Errorf("free spins: invalid spin count %d", spins)
	}
	s.Flush()
	s.state = Start(s.rule, spins, multiplier, triggerBet)
	s.observers.OnTrigger(s.State())
	return nil
}

// CheckTrigger Запускает ли оценка бонус
func (s *Session) CheckTrigger(ev model.WinEvaluation) bool {
	return s.rule != nil && !s.state.Active && ev.Bonus.Triggered && ev.Bonus.SpinsAwarded > 0
}

// TriggerFrom Запустить раунд по оценке платного спина, если она это позволяет
func (s *Session) TriggerFrom(ev model.WinEvaluation) (bool, error) {
	if !s.CheckTrigger(ev) {
		return false, nil
	}
	if err := s.Trigger(ev.Bonus.SpinsAwarded, 0, ev.TotalBet); err != nil {
		return false, err
	}
	return true, nil
}

// Spin Один фриспин: SPIN, затем RETRIGGER_CHECK
func (s *Session) Spin(c Cycler) (model.FreeSpinRecord, error) {
	next, err := BeginSpin(s.rule, s.state)
	if err != nil {
		return model.FreeSpinRecord{}, err
	}
	s.state = next
	s.observers.OnSpinStart(s.State())

	res, ev := c.Cycle(s.state.CurrentMultiplier)
	record := model.FreeSpinRecord{
		Spin:       s.state.CurrentSpin,
		Multiplier: s.state.CurrentMultiplier,
		Stops:      res.Stops,
		Matrix:     res.Matrix,
		Win:        ev.TotalWin,
		HitClass:   model.ClassifyHit(ev.TotalWin, s.state.TriggerBet),
	}
	s.state = CompleteSpin(s.state, record)

	var added int
	s.state, added = ApplyRetrigger(s.rule, s.state, res.Matrix.Count(s.rule.TriggerSymbol))
	if added > 0 {
		record.Retriggered = true
		record.SpinsAdded = added
		s.observers.OnRetrigger(added, s.State())
	}
	s.observers.OnSpinComplete(record, s.State())
	return record, nil
}

// Complete Завершение раунда: OUTRO, итог, затем IDLE
func (s *Session) Complete() (model.FreeSpinSummary, error) {
	next, summary, err := Finish(s.state)
	if err != nil {
		return model.FreeSpinSummary{}, err
	}
	s.state = next
	s.Flush()
	s.observers.OnComplete(summary)
	s.state = Idle()
	return summary, nil
}

// Step Один фриспин и завершение раунда, если спины кончились. Записи сразу уходят в статистику
func (s *Session) Step(c Cycler) (model.FreeSpinRecord, *model.FreeSpinSummary, error) {
	record, err := s.Spin(c)
	if err != nil {
		return model.FreeSpinRecord{}, nil, err
	}
	s.Flush()
	if s.state.RemainingSpins > 0 {
		return record, nil, nil
	}
	summary, err := s.Complete()
	if err != nil {
		return record, nil, err
	}
	return record, &summary, nil
}

// Play Раунд целиком с паузами пейсера. При отмене контекста состояние остаётся частичным,
// а сыгранные спины уже переданы в статистику
func (s *Session) Play(ctx context.Context, c Cycler, pacer *Pacer) (model.FreeSpinSummary, error) {
	if !s.state.Active {
		return model.FreeSpinSummary{}, model.ErrBonusInactive
	}
	defer s.Flush()

	if s.state.Phase == model.PhaseIntro {
		if err := pacer.Wait(ctx, model.PhaseIntro); err != nil {
			return model.FreeSpinSummary{}, err
		}
	}
	for s.state.RemainingSpins > 0 {
		if err := pacer.Wait(ctx, model.PhaseSpin); err != nil {
			return model.FreeSpinSummary{}, err
		}
		if _, err := s.Spin(c); err != nil {
			return model.FreeSpinSummary{}, err
		}
	}
	if err := pacer.Wait(ctx, model.PhaseOutro); err != nil {
		return model.FreeSpinSummary{}, err
	}
	return s.Complete()
}

// Abort Досрочное завершение раунда. Сыгранное сбрасывается в статистику, оставшиеся спины сгорают
func (s *Session) Abort() model.FreeSpinSummary {
	if !s.state.Active {
		return model.FreeSpinSummary{}
	}
	s.Flush()
	summary := Summarize(s.state)
	s.state = Idle()
	return summary
}

// Flush Передать в статистику ещё не учтённые записи. Повторный вызов ничего не делает
func (s *Session) Flush() {
	pending := s.Pending()
	if len(pending) == 0 {
		return
	}
	if s.recorder != nil {
		s.recorder(s.state.TriggerBet, pending)
	}
	s.state.Recorded = len(s.state.History)
}

// Pending Записи, которые ещё не попали в статистику
func (s *Session) Pending() []model.FreeSpinRecord {
	if s.state.Recorded >= len(s.state.History) {
		return nil
	}
	out := make([]model.FreeSpinRecord, len(s.state.History)-s.state.Recorded)
	copy(out, s.state.History[s.state.Recorded:])
	return out
}

// State Копия состояния
func (s *Session) State() model.FreeSpinState {
	st := s.state
	st.History = make([]model.FreeSpinRecord, len(s.state.History))
	copy(st.History, s.state.History)
	return st
}

func (s *Session) IsActive() bool             { return s.state.Active }
func (s *Session) Phase() model.FreeSpinPhase { return s.state.Phase }
func (s *Session) RemainingSpins() int        { return s.state.RemainingSpins }
func (s *Session) TotalSpins() int            { return s.state.TotalSpins }
func (s *Session) CurrentSpin() int           { return s.state.CurrentSpin }
func (s *Session) CurrentMultiplier() float64 { return s.state.CurrentMultiplier }
func (s *Session) CumulativeWin() float64     { return s.state.CumulativeWin }
func (s *Session) RetriggerCount() int        { return s.state.RetriggerCount }
func (s *Session) TriggerBet() float64        { return s.state.TriggerBet }
func (s *Session) Rule() *model.FreeSpinRule  { return s.rule }
