package simulator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"slot_engine/internal/rng"
)

// Report Итог одного прогона. Выигрыши в кратностях полной ставки, доли в диапазоне 0..1
type Report struct {
	GameID       string              `json:"gameId"`
	Spins        int                 `json:"spins"`
	Seed         uint64              `json:"seed"`
	BetPerLine   float64             `json:"betPerLine"`
	TargetRTP    float64             `json:"targetRTP"`
	MeasuredRTP  float64             `json:"measuredRTP"`
	Delta        float64             `json:"delta"`
	Tolerance    float64             `json:"tolerance"`
	Pass         bool                `json:"pass"`
	HitFrequency float64             `json:"hitFrequency"`
	StdDev       float64             `json:"stdDev"`
	MaxWin       float64             `json:"maxWin"`
	MedianWin    float64             `json:"medianWin"`
	Distribution []Bucket            `json:"distribution"`
	Streaks      Streaks             `json:"streaks"`
	Triggers     int                 `json:"freeSpinTriggers"`
	FreeSpins    int                 `json:"freeSpinsPlayed"`
	TriggerRate  float64             `json:"freeSpinTriggerRate"`
	ChiSquare    rng.ChiSquareResult `json:"chiSquare"`
	Duration     time.Duration       `json:"duration"`
}

// Bucket Корзина распределения выигрышей
type Bucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Streaks Серии выигрышей и проигрышей
type Streaks struct {
	MaxWinStreak  int `json:"maxWinStreak"`
	MaxLossStreak int `json:"maxLossStreak"`
	TotalWins     int `json:"totalWins"`
	TotalLosses   int `json:"totalLosses"`
}

// Lines Текстовый отчёт для консоли
func (r *Report) Lines() []string {
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	out := []string{
		fmt.Sprintf("Game:        %s (seed %d, %d spins, bet per line %s)", r.GameID, r.Seed, r.Spins, round(r.BetPerLine, 2)),
		fmt.Sprintf("Target RTP:  %s%%", pct(r.TargetRTP)),
		fmt.Sprintf("Measured:    %s%%", pct(r.MeasuredRTP)),
		fmt.Sprintf("Delta:       %s%% (±%s%%) %s", pct(r.Delta), pct(r.Tolerance), status),
		fmt.Sprintf("Hit freq:    %s%%", pct(r.HitFrequency)),
		fmt.Sprintf("Std dev:     %s", round(r.StdDev, 4)),
		fmt.Sprintf("Max win:     %sx", round(r.MaxWin, 2)),
		fmt.Sprintf("Median win:  %sx", round(r.MedianWin, 2)),
		fmt.Sprintf("Free spins:  %d triggers (%s%%), %d played", r.Triggers, pct(r.TriggerRate), r.FreeSpins),
		fmt.Sprintf("Streaks:     max win %d, max loss %d", r.Streaks.MaxWinStreak, r.Streaks.MaxLossStreak),
		fmt.Sprintf("Chi-squared: %s (critical %s, df %d) pass=%t",
			round(r.ChiSquare.Statistic, 4), round(r.ChiSquare.Critical, 4), r.ChiSquare.DegreesOfFreedom, r.ChiSquare.Pass),
		"Distribution:",
	}
	for _, b := range r.Distribution {
		out = append(out, fmt.Sprintf("  %-8s %s%%", b.Label, round(b.Percent, 2)))
	}
	out = append(out, fmt.Sprintf("Took:        %s", r.Duration.Round(time.Millisecond)))
	return out
}

// ManyReport Итог нескольких независимых прогонов
type ManyReport struct {
	Runs    []*Report `json:"runs"`
	MeanRTP float64   `json:"meanRTP"`
	MinRTP  float64   `json:"minRTP"`
	MaxRTP  float64   `json:"maxRTP"`
	Spread  float64   `json:"spread"`
	AllPass bool      `json:"allPass"`
}

// Lines Сводка по прогонам
func (m *ManyReport) Lines() []string {
	out := make([]string, 0, len(m.Runs)+2)
	for _, r := range m.Runs {
		out = append(out, fmt.Sprintf("seed %-6d rtp %s%% pass=%t", r.Seed, pct(r.MeasuredRTP), r.Pass))
	}
	out = append(out,
		fmt.Sprintf("mean %s%%, min %s%%, max %s%%, spread %s%%",
			pct(m.MeanRTP), pct(m.MinRTP), pct(m.MaxRTP), pct(m.Spread)),
		fmt.Sprintf("all pass: %t", m.AllPass),
	)
	return out
}

func round(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).String()
}

func pct(v float64) string {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Round(4).String()
}
