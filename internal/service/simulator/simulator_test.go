package simulator

import (
	"context"
	"errors"
	"math"
	"testing"

	"slot_engine/internal/model"
)

// waysConfig Маленькая игра без бонусов для сравнения с точным перебором
func waysConfig() *model.GameConfig {
	return &model.GameConfig{
		ID:         "tiny-ways",
		ReelsCount: 3,
		RowsCount:  3,
		WinType:    model.WinTypeWays,
		ReelStrips: [][]int{
			{1, 2, 3, 1, 9, 2},
			{2, 1, 3, 2, 1, 3},
			{3, 1, 9, 2, 3, 1},
		},
		Paytable:  map[string]float64{"1-3": 2, "2-3": 3, "3-3": 5},
		WildRules: []model.WildRule{{SymbolID: 9}},
		BetConfig: model.BetConfig{CostMultiplier: 10},
		TargetRTP: 1,
	}
}

// triggerConfig Поле 3x1, ленты из двух символов: фриспины запускаются с вероятностью 1/8
func triggerConfig() *model.GameConfig {
	strip := []int{10, 1}
	return &model.GameConfig{
		ID:         "trigger",
		ReelsCount: 3,
		RowsCount:  1,
		WinType:    model.WinTypeLines,
		Paylines:   [][]int{{0, 0, 0}},
		ReelStrips: [][]int{strip, strip, strip},
		Paytable:   map[string]float64{"1-3": 1},
		FreeSpinRules: &model.FreeSpinRule{
			TriggerSymbol:  10,
			MinCount:       3,
			SpinsAwarded:   map[int]int{3: 2},
			MultiplierMode: model.MultiplierFixed,
			BaseMultiplier: 1,
		},
	}
}

func TestExactRTP_HandComputed(t *testing.T) {
	strip := []int{1, 2}
	cfg := &model.GameConfig{
		ReelsCount: 3,
		RowsCount:  1,
		WinType:    model.WinTypeLines,
		Paylines:   [][]int{{0, 0, 0}},
		ReelStrips: [][]int{strip, strip, strip},
		Paytable:   map[string]float64{"1-3": 8},
	}
	exact, err := ExactRTP(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exact.Combinations != 8 {
		t.Errorf("combinations %d, want 8", exact.Combinations)
	}
	if math.Abs(exact.RTP-1) > 1e-12 {
		t.Errorf("rtp %v, want 1", exact.RTP)
	}
	if math.Abs(exact.HitFrequency-0.125) > 1e-12 {
		t.Errorf("hit frequency %v, want 0.125", exact.HitFrequency)
	}
}

func TestExactRTP_TooLarge(t *testing.T) {
	strip := make([]int, 100)
	cfg := &model.GameConfig{
		ReelsCount: 5,
		RowsCount:  3,
		WinType:    model.WinTypeWays,
		ReelStrips: [][]int{strip, strip, strip, strip, strip},
	}
	if _, err := ExactRTP(cfg); !errors.Is(err, model.ErrConfig) {
		t.Fatalf("want ErrConfig, got %v", err)
	}
}

func TestRun_ConvergesToExact(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}
	cfg := waysConfig()
	exact, err := ExactRTP(cfg)
	if err != nil {
		t.Fatal(err)
	}

	const spins = 200_000
	rep, err := Run(context.Background(), cfg, Options{Spins: spins, Seed: 42, BetPerLine: 1})
	if err != nil {
		t.Fatal(err)
	}
	bound := 5 * rep.StdDev / math.Sqrt(spins)
	if math.Abs(rep.MeasuredRTP-exact.RTP) > bound {
		t.Errorf("measured %v vs exact %v, bound %v", rep.MeasuredRTP, exact.RTP, bound)
	}
	if math.Abs(rep.HitFrequency-exact.HitFrequency) > 0.01 {
		t.Errorf("hit frequency %v vs exact %v", rep.HitFrequency, exact.HitFrequency)
	}
}

func TestRun_ReportFields(t *testing.T) {
	rep, err := Run(context.Background(), waysConfig(), Options{Spins: 5000, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Spins != 5000 || rep.Seed != 7 || rep.BetPerLine != 1 {
		t.Errorf("options not reflected: %+v", rep)
	}
	if rep.Streaks.TotalWins+rep.Streaks.TotalLosses != rep.Spins {
		t.Errorf("streak totals %+v do not add up to %d", rep.Streaks, rep.Spins)
	}
	total, sum := 0, 0.0
	for _, b := range rep.Distribution {
		total += b.Count
		sum += b.Percent
	}
	if total != rep.Spins || math.Abs(sum-100) > 1e-6 {
		t.Errorf("distribution count %d, percent %v", total, sum)
	}
	if rep.MaxWin < rep.MedianWin {
		t.Errorf("max %v below median %v", rep.MaxWin, rep.MedianWin)
	}
	if !rep.ChiSquare.Pass {
		t.Errorf("seeded source failed uniformity: %+v", rep.ChiSquare)
	}
	if rep.Tolerance != 0.005 {
		t.Errorf("tolerance %v, want the ±0.5%% default", rep.Tolerance)
	}
	if rep.Pass != (rep.Delta <= rep.Tolerance) {
		t.Errorf("pass flag inconsistent")
	}
	if len(rep.Lines()) == 0 {
		t.Errorf("empty text report")
	}
}

func TestRun_TargetRTPPercent(t *testing.T) {
	tests := []struct {
		name   string
		cfg    float64
		opt    float64
		target float64
	}{
		{"config percent", 100, 0, 1},
		{"config fraction", 0.95, 0, 0.95},
		{"option percent", 0.5, 96, 0.96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := waysConfig()
			cfg.TargetRTP = tt.cfg
			rep, err := Run(context.Background(), cfg, Options{Spins: 2000, Seed: 3, TargetRTP: tt.opt})
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(rep.TargetRTP-tt.target) > 1e-9 {
				t.Errorf("target %v, want %v", rep.TargetRTP, tt.target)
			}
			if math.Abs(rep.Delta-math.Abs(rep.MeasuredRTP-tt.target)) > 1e-9 {
				t.Errorf("delta %v for measured %v", rep.Delta, rep.MeasuredRTP)
			}
		})
	}
}

func TestRun_Reproducible(t *testing.T) {
	a, err := Run(context.Background(), waysConfig(), Options{Spins: 2000, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), waysConfig(), Options{Spins: 2000, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	if a.MeasuredRTP != b.MeasuredRTP || a.MaxWin != b.MaxWin || a.Streaks != b.Streaks {
		t.Errorf("same seed gave different runs: %v vs %v", a.MeasuredRTP, b.MeasuredRTP)
	}
}

func TestRun_FreeSpinsCounted(t *testing.T) {
	rep, err := Run(context.Background(), triggerConfig(), Options{Spins: 4000, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Triggers == 0 {
		t.Fatal("no free spin triggers in 4000 spins at 1/8")
	}
	if rep.FreeSpins != 2*rep.Triggers {
		t.Errorf("free spins %d, want %d", rep.FreeSpins, 2*rep.Triggers)
	}
	if math.Abs(rep.TriggerRate-0.125) > 0.03 {
		t.Errorf("trigger rate %v, want about 0.125", rep.TriggerRate)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, waysConfig(), Options{Spins: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRunMany(t *testing.T) {
	many, err := RunMany(context.Background(), waysConfig(), Options{Spins: 2000, Seed: 100}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(many.Runs) != 4 {
		t.Fatalf("runs %d, want 4", len(many.Runs))
	}
	for i, r := range many.Runs {
		if r.Seed != 100+uint64(i) {
			t.Errorf("run %d seed %d", i, r.Seed)
		}
		if r.MeasuredRTP < many.MinRTP || r.MeasuredRTP > many.MaxRTP {
			t.Errorf("run %d rtp %v outside [%v, %v]", i, r.MeasuredRTP, many.MinRTP, many.MaxRTP)
		}
	}
	if math.Abs(many.Spread-(many.MaxRTP-many.MinRTP)) > 1e-12 {
		t.Errorf("spread %v", many.Spread)
	}
}
