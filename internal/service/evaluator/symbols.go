package evaluator

import "slot_engine/internal/model"

type wildInfo struct {
	rule  model.WildRule
	subs  map[int]bool // nil значит любой не-скаттер
	reels map[int]bool // nil значит любой барабан
}

// symbolTable Справочник вайлдов и скаттеров, собирается один раз при инициализации
type symbolTable struct {
	wilds    map[int]*wildInfo
	scatters map[int]bool
}

func newSymbolTable(cfg *model.GameConfig) symbolTable {
	t := symbolTable{
		wilds:    make(map[int]*wildInfo, len(cfg.WildRules)),
		scatters: cfg.ScatterSymbols(),
	}
	for _, rule := range cfg.WildRules {
		info := &wildInfo{rule: rule}
		if len(rule.SubstitutesFor) > 0 {
			info.subs = toSet(rule.SubstitutesFor)
		}
		if len(rule.Reels) > 0 {
			info.reels = toSet(rule.Reels)
		}
		t.wilds[rule.SymbolID] = info
	}
	return t
}

func toSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// activeWild Вайлд, который действует на данном барабане. На прочих барабанах он обычный символ
func (t symbolTable) activeWild(sym, reel int) bool {
	w, ok := t.wilds[sym]
	if !ok {
		return false
	}
	return w.reels == nil || w.reels[reel]
}

// substitutes Может ли символ cell на барабане reel заменить target. Скаттеры не заменяются никогда
func (t symbolTable) substitutes(cell, reel, target int) bool {
	if cell == target || t.scatters[target] || !t.activeWild(cell, reel) {
		return false
	}
	w := t.wilds[cell]
	return w.subs == nil || w.subs[target]
}

// matches Совпадает ли клетка с целевым символом напрямую или через вайлд
func (t symbolTable) matches(cell, reel, target int) bool {
	return cell == target || t.substitutes(cell, reel, target)
}

// wildMultiplier Множитель вайлда на барабане, по умолчанию 1
func (t symbolTable) wildMultiplier(cell, reel int) float64 {
	w, ok := t.wilds[cell]
	if !ok {
		return 1
	}
	if m, ok := w.rule.Multipliers[reel]; ok && m > 0 {
		return m
	}
	return 1
}
