package evaluator

import "slot_engine/internal/model"

// BonusTriggerResolver Проверка запуска фриспинов
type BonusTriggerResolver struct {
	rule *model.FreeSpinRule
}

func NewBonusTriggerResolver(rule *model.FreeSpinRule) *BonusTriggerResolver {
	return &BonusTriggerResolver{rule: rule}
}

// Resolve Сколько фриспинов даёт поле
func (b *BonusTriggerResolver) Resolve(m model.Matrix) model.BonusTrigger {
	if b.rule == nil {
		return model.BonusTrigger{}
	}
	count := m.Count(b.rule.TriggerSymbol)
	res := model.BonusTrigger{Count: count}
	if count < b.rule.MinCount || count == 0 {
		return res
	}

	res.SpinsAwarded = SpinsFor(b.rule.SpinsAwarded, count, b.rule.MinCount)
	res.Triggered = res.SpinsAwarded > 0
	res.Retrigger = b.rule.RetriggerEnabled
	res.BonusType = b.rule.BonusType
	if res.BonusType == "" {
		res.BonusType = model.DefaultBonusType
	}
	return res
}

// SpinsFor Число спинов по таблице: точное количество, затем минимальное, иначе 0
func SpinsFor(table map[int]int, count, minCount int) int {
	if v, ok := table[count]; ok {
		return v
	}
	if v, ok := table[minCount]; ok {
		return v
	}
	return 0
}
