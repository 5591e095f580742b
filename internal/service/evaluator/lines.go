package evaluator

import (
	"fmt"

	"slot_engine/internal/model"
)

// Lines Подсчёт выигрыша по фиксированным линиям
type Lines struct {
	cfg      *model.GameConfig
	paylines [][]int
	sym      symbolTable
}

// NewLines Оценщик линий. Каждая линия должна задавать ряд для каждого барабана
func NewLines(cfg *model.GameConfig) (*Lines, error) {
	if len(cfg.Paylines) == 0 {
		return nil, fmt.Errorf("%w: lines mode without paylines", model.ErrConfig)
	}
	for i, line := range cfg.Paylines {
		if len(line) != cfg.ReelsCount {
			return nil, fmt.Errorf("%w: payline %d has %d positions for %d reels", model.ErrConfig, i+1, len(line), cfg.ReelsCount)
		}
		for _, row := range line {
			if row < 0 || row >= cfg.RowsCount {
				return nil, fmt.Errorf("%w: payline %d row %d out of range", model.ErrConfig, i+1, row)
			}
		}
	}
	return &Lines{cfg: cfg, paylines: cfg.Paylines, sym: newSymbolTable(cfg)}, nil
}

func (l *Lines) Mode() model.WinType { return model.WinTypeLines }

// Evaluate выполняет оценку выигрышных линий
func (l *Lines) Evaluate(m model.Matrix, betPerLine, multiplier float64) []model.Win {
	var wins []model.Win
	for i, line := range l.paylines {
		sym, count, wildMult := l.matchLine(m, line)
		if count < 2 {
			continue
		}
		base := l.cfg.Pay(sym, count)
		if base <= 0 {
			continue
		}

		positions := make([]model.Position, count)
		for reel := 0; reel < count; reel++ {
			positions[reel] = model.Position{Row: line[reel], Reel: reel}
		}
		win := model.Win{
			Kind:      model.WinKindLine,
			Line:      i + 1,
			Symbol:    sym,
			Count:     count,
			Positions: positions,
			Amount:    base * betPerLine * multiplier * wildMult,
		}
		if wildMult != 1 {
			win.WildMultiplier = wildMult
		}
		wins = append(wins, win)
	}
	return wins
}

// matchLine Символ выплаты, длина совпадения слева направо и множитель вайлдов в нём
func (l *Lines) matchLine(m model.Matrix, line []int) (int, int, float64) {
	cell := func(reel int) int { return m[line[reel]][reel] }

	// Ведущие вайлды
	lead := 0
	for lead < len(line) && l.sym.activeWild(cell(lead), lead) {
		lead++
	}

	// Линия целиком из вайлдов платит как сам вайлд
	if lead == len(line) {
		return l.wildRun(cell, len(line))
	}

	pay := cell(lead)
	for reel := 0; reel < lead; reel++ {
		if !l.sym.substitutes(cell(reel), reel, pay) {
			// Вайлд не заменяет символ выплаты, платит только серия вайлдов
			return l.wildRun(cell, lead)
		}
	}
	if l.sym.scatters[pay] {
		return pay, 0, 1
	}

	count, wildMult := 0, 1.0
	for reel := range line {
		c := cell(reel)
		switch {
		case c == pay:
			count++
		case l.sym.substitutes(c, reel, pay):
			count++
			wildMult *= l.sym.wildMultiplier(c, reel)
		default:
			return pay, count, wildMult
		}
	}
	return pay, count, wildMult
}

// wildRun Серия одинаковых вайлдов с первого барабана, не длиннее limit, и произведение их множителей
func (l *Lines) wildRun(cell func(int) int, limit int) (int, int, float64) {
	if limit == 0 {
		return 0, 0, 1
	}
	sym := cell(0)
	count, wildMult := 0, 1.0
	for count < limit && cell(count) == sym {
		wildMult *= l.sym.wildMultiplier(sym, count)
		count++
	}
	return sym, count, wildMult
}
