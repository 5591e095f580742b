package evaluator

import (
	"sort"

	"go.uber.org/zap"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

// JackpotResolver Розыгрыш джекпотов. Пулы принадлежат экземпляру, у каждой сессии свои
type JackpotResolver struct {
	tiers  []model.JackpotTier
	src    rng.Source
	logger *zap.Logger
}

// NewJackpotResolver Уровни упорядочиваются по убыванию суммы, чтобы старший проверялся первым
func NewJackpotResolver(tiers []model.JackpotTier, src rng.Source, logger *zap.Logger) *JackpotResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	sorted := make([]model.JackpotTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SeedAmount > sorted[j].SeedAmount
	})
	for i := range sorted {
		if sorted[i].Pool < sorted[i].SeedAmount {
			sorted[i].Pool = sorted[i].SeedAmount
		}
	}
	return &JackpotResolver{tiers: sorted, src: src, logger: logger}
}

// Contribute Отчисление от ставки в каждый пул
func (j *JackpotResolver) Contribute(totalBet float64) {
	for i := range j.tiers {
		if j.tiers[i].ContributionRate > 0 {
			j.tiers[i].Pool += totalBet * j.tiers[i].ContributionRate
		}
	}
}

// Resolve Отдельный бросок на каждый уровень, выигрывает первый сработавший.
// За один спин можно выиграть не больше одного уровня
func (j *JackpotResolver) Resolve(totalBet float64) model.JackpotResult {
	for i := range j.tiers {
		t := &j.tiers[i]
		chance := t.Probability
		if t.QualifyingBet > 0 {
			chance *= totalBet / t.QualifyingBet
		}
		if j.src.Float64() >= chance {
			continue
		}

		amount := t.Pool
		t.Pool = t.SeedAmount
		j.logger.Info("jackpot hit",
			zap.String("tier", t.Name),
			zap.Float64("amount", amount),
			zap.Float64("total_bet", totalBet),
		)
		return model.JackpotResult{Won: true, Tier: t.Name, WinAmount: amount}
	}
	return model.JackpotResult{}
}

// Tiers Копия текущих уровней с пулами
func (j *JackpotResolver) Tiers() []model.JackpotTier {
	out := make([]model.JackpotTier, len(j.tiers))
	copy(out, j.tiers)
	return out
}
