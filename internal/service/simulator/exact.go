package simulator

import (
	"fmt"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
	"slot_engine/internal/service/evaluator"
	"slot_engine/internal/service/reel"
)

// MaxExactCombinations Предел перебора комбинаций стопов
const MaxExactCombinations = 30_000_000

// Exact Точный RTP базовой игры
type Exact struct {
	Combinations int     `json:"combinations"`
	RTP          float64 `json:"rtp"`
	HitFrequency float64 `json:"hitFrequency"`
	TriggerRate  float64 `json:"freeSpinTriggerRate"`
}

// ExactRTP Перебор всех комбинаций стопов. Без джекпотов и без выигрыша фриспинов, лимит выигрыша учитывается
func ExactRTP(cfg *model.GameConfig) (*Exact, error) {
	if err := reel.CheckStrips(cfg.ReelStrips, cfg.ReelsCount, cfg.RowsCount); err != nil {
		return nil, err
	}
	strips := cfg.ReelStrips[:cfg.ReelsCount]

	total := 1
	for _, s := range strips {
		total *= len(s)
		if total > MaxExactCombinations {
			return nil, fmt.Errorf("%w: more than %d stop combinations", model.ErrConfig, MaxExactCombinations)
		}
	}

	base := *cfg
	base.JackpotRules = nil
	eval, err := evaluator.New(&base, rng.NewSeeded(0), nil)
	if err != nil {
		return nil, err
	}

	totalBet := cfg.TotalBet(1)
	limit := cfg.MaxWinMultiplier * totalBet
	stops := make([]int, len(strips))
	var sum float64
	var hits, triggers int

	for n := 0; n < total; n++ {
		ev := eval.EvaluateBonusSpin(reel.Window(strips, cfg.RowsCount, stops), 1, totalBet, 1)
		win := ev.TotalWin
		if limit > 0 && win > limit {
			win = limit
		}
		sum += win
		if win > 0 {
			hits++
		}
		if ev.Bonus.Triggered {
			triggers++
		}

		// следующая комбинация
		for r := range stops {
			stops[r]++
			if stops[r] < len(strips[r]) {
				break
			}
			stops[r] = 0
		}
	}

	return &Exact{
		Combinations: total,
		RTP:          sum / totalBet / float64(total),
		HitFrequency: float64(hits) / float64(total),
		TriggerRate:  float64(triggers) / float64(total),
	}, nil
}
