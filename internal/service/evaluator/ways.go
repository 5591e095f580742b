package evaluator

import (
	"sort"

	"slot_engine/internal/model"
)

// minWaysReels Минимум подряд совпавших барабанов для выигрыша по путям
const minWaysReels = 3

// Ways Подсчёт выигрыша по путям (ways-to-win)
type Ways struct {
	cfg *model.GameConfig
	sym symbolTable
}

func NewWays(cfg *model.GameConfig) *Ways {
	return &Ways{cfg: cfg, sym: newSymbolTable(cfg)}
}

func (w *Ways) Mode() model.WinType { return model.WinTypeWays }

// Evaluate Для каждого символа поля считает совпадения по барабанам слева направо до первого пустого
func (w *Ways) Evaluate(m model.Matrix, betPerLine, multiplier float64) []model.Win {
	var wins []model.Win
	for _, sym := range w.candidates(m) {
		ways, reels := 1, 0
		var positions []model.Position

		for reel := 0; reel < m.Reels(); reel++ {
			n := 0
			for row := 0; row < m.Rows(); row++ {
				if w.sym.matches(m[row][reel], reel, sym) {
					n++
					positions = append(positions, model.Position{Row: row, Reel: reel})
				}
			}
			if n == 0 {
				break
			}
			ways *= n
			reels++
		}

		if reels < minWaysReels {
			continue
		}
		base := w.cfg.Pay(sym, reels)
		if base <= 0 {
			continue
		}
		wins = append(wins, model.Win{
			Kind:      model.WinKindWays,
			Symbol:    sym,
			Count:     reels,
			Ways:      ways,
			Positions: positions,
			Amount:    base * betPerLine * float64(ways) * multiplier,
		})
	}
	return wins
}

// candidates Различные платящие символы поля по возрастанию.
// Вайлд на барабане, где он не действует, платит как обычный символ
func (w *Ways) candidates(m model.Matrix) []int {
	seen := make(map[int]bool)
	var out []int
	for _, row := range m {
		for reel, s := range row {
			if seen[s] || w.sym.activeWild(s, reel) || w.sym.scatters[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}
