package evaluator

import (
	"testing"

	"slot_engine/internal/model"
)

func scatterMatrix(n int) model.Matrix {
	m := model.Matrix{
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	positions := []model.Position{
		{Row: 0, Reel: 0}, {Row: 1, Reel: 2}, {Row: 2, Reel: 4}, {Row: 0, Reel: 3}, {Row: 2, Reel: 1},
	}
	for i := 0; i < n; i++ {
		p := positions[i]
		m[p.Row][p.Reel] = scatter
	}
	return m
}

func TestScatterResolver(t *testing.T) {
	cfg := baseConfig(model.WinTypeLines)
	s := NewScatterResolver(cfg.ScatterRules)
	tests := []struct {
		name       string
		count      int
		totalBet   float64
		multiplier float64
		want       float64
	}{
		{"below minimum", 2, 20, 1, 0},
		{"three scatters", 3, 20, 1, 40},
		{"four with multiplier", 4, 20, 2, 400},
		{"five", 5, 1, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wins := s.Resolve(scatterMatrix(tt.count), tt.totalBet, tt.multiplier)
			got := 0.0
			for _, w := range wins {
				got += w.Amount
				if len(w.Positions) != w.Count {
					t.Errorf("positions %v for count %d", w.Positions, w.Count)
				}
			}
			if got != tt.want {
				t.Errorf("scatter pay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBonusTriggerResolver(t *testing.T) {
	cfg := baseConfig(model.WinTypeLines)
	b := NewBonusTriggerResolver(cfg.FreeSpinRules)

	res := b.Resolve(scatterMatrix(3))
	if !res.Triggered || res.SpinsAwarded != 10 {
		t.Errorf("3 scatters: %+v, want 10 spins", res)
	}
	if !res.Retrigger || res.BonusType != model.DefaultBonusType {
		t.Errorf("3 scatters: retrigger %v bonus type %q", res.Retrigger, res.BonusType)
	}
	if res := b.Resolve(scatterMatrix(5)); res.SpinsAwarded != 25 {
		t.Errorf("5 scatters: %d spins, want 25", res.SpinsAwarded)
	}
	if res := b.Resolve(scatterMatrix(2)); res.Triggered || res.Count != 2 {
		t.Errorf("2 scatters: %+v", res)
	}
	if res := NewBonusTriggerResolver(nil).Resolve(scatterMatrix(5)); res.Triggered {
		t.Errorf("no rule: %+v", res)
	}
}

func TestSpinsFor_Fallback(t *testing.T) {
	table := map[int]int{3: 10, 4: 15}
	tests := []struct {
		count, min, want int
	}{
		{3, 3, 10},
		{4, 3, 15},
		{6, 3, 10},
		{6, 5, 0},
	}
	for _, tt := range tests {
		if got := SpinsFor(table, tt.count, tt.min); got != tt.want {
			t.Errorf("SpinsFor(%d, %d) = %d, want %d", tt.count, tt.min, got, tt.want)
		}
	}
}

func TestJackpotResolver_HighTierFirst(t *testing.T) {
	tiers := []model.JackpotTier{
		{Name: "mini", SeedAmount: 10, Probability: 1, QualifyingBet: 1},
		{Name: "grand", SeedAmount: 1000, Probability: 1, QualifyingBet: 1},
	}
	j := NewJackpotResolver(tiers, &seqSource{floats: []float64{0.5}}, nil)
	res := j.Resolve(1)
	if !res.Won || res.Tier != "grand" || res.WinAmount != 1000 {
		t.Errorf("got %+v, want grand", res)
	}
}

func TestJackpotResolver_IndependentRolls(t *testing.T) {
	tiers := []model.JackpotTier{
		{Name: "grand", SeedAmount: 1000, Probability: 0.01, QualifyingBet: 1},
		{Name: "mini", SeedAmount: 10, Probability: 0.5, QualifyingBet: 1},
	}
	// первый бросок проходит мимо grand, второй попадает в mini
	src := &seqSource{floats: []float64{0.2, 0.3}}
	j := NewJackpotResolver(tiers, src, nil)
	res := j.Resolve(1)
	if res.Tier != "mini" || res.WinAmount != 10 {
		t.Errorf("got %+v, want mini", res)
	}
	if src.i != 2 {
		t.Errorf("%d draws, want one per evaluated tier", src.i)
	}
}

func TestJackpotResolver_BetScaling(t *testing.T) {
	tiers := []model.JackpotTier{{Name: "major", SeedAmount: 100, Probability: 0.1, QualifyingBet: 10}}
	j := NewJackpotResolver(tiers, &seqSource{floats: []float64{0.15}}, nil)
	if res := j.Resolve(10); res.Won {
		t.Errorf("0.15 >= 0.1 should miss: %+v", res)
	}
	// ставка вдвое больше квалификационной удваивает шанс
	if res := j.Resolve(20); !res.Won {
		t.Errorf("0.15 < 0.2 should hit: %+v", res)
	}
}

func TestJackpotResolver_PoolContributionAndReset(t *testing.T) {
	tiers := []model.JackpotTier{{Name: "mini", SeedAmount: 50, Probability: 1, ContributionRate: 0.01}}
	j := NewJackpotResolver(tiers, &seqSource{floats: []float64{0}}, nil)
	for i := 0; i < 10; i++ {
		j.Contribute(100)
	}
	if pool := j.Tiers()[0].Pool; pool != 60 {
		t.Fatalf("pool = %v, want 60", pool)
	}
	res := j.Resolve(100)
	if res.WinAmount != 60 {
		t.Errorf("win = %v, want 60", res.WinAmount)
	}
	if pool := j.Tiers()[0].Pool; pool != 50 {
		t.Errorf("pool after hit = %v, want reset to 50", pool)
	}
}
