package evaluator

import "slot_engine/internal/model"

// ScatterResolver Выплаты по скаттерам независимо от позиции
type ScatterResolver struct {
	rules []model.ScatterRule
}

func NewScatterResolver(rules []model.ScatterRule) *ScatterResolver {
	return &ScatterResolver{rules: rules}
}

// Resolve Выплата по точному количеству скаттеров: totalBet × множитель × общий множитель
func (s *ScatterResolver) Resolve(m model.Matrix, totalBet, multiplier float64) []model.ScatterWin {
	var wins []model.ScatterWin
	for _, rule := range s.rules {
		count := m.Count(rule.SymbolID)
		if count < rule.MinCount || count == 0 {
			continue
		}
		mult := rule.PayMultipliers[count]
		if mult <= 0 {
			continue
		}
		wins = append(wins, model.ScatterWin{
			Symbol:     rule.SymbolID,
			Count:      count,
			Multiplier: mult,
			Positions:  m.Positions(rule.SymbolID),
			Amount:     totalBet * mult * multiplier,
		})
	}
	return wins
}
