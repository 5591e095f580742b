package freespin

import (
	"context"
	"time"

	"slot_engine/internal/model"
)

// Pacing Задержки между переходами раунда
type Pacing struct {
	Intro time.Duration
	Spin  time.Duration
	Outro time.Duration
}

// Pacer Выдерживает паузы перед переходами. Сами переходы мгновенные,
// пейсер только решает когда их вызывать
type Pacer struct {
	pacing Pacing
}

func NewPacer(p Pacing) *Pacer {
	return &Pacer{pacing: p}
}

// Wait Пауза перед фазой. Прерывается отменой контекста
func (p *Pacer) Wait(ctx context.Context, phase model.FreeSpinPhase) error {
	if p == nil {
		return ctx.Err()
	}
	var d time.Duration
	switch phase {
	case model.PhaseIntro:
		d = p.pacing.Intro
	case model.PhaseSpin:
		d = p.pacing.Spin
	case model.PhaseOutro:
		d = p.pacing.Outro
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
