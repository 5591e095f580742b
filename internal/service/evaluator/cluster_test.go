package evaluator

import (
	"testing"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

func clusterConfig() *model.GameConfig {
	cfg := baseConfig(model.WinTypeCluster)
	cfg.ReelsCount, cfg.RowsCount = 5, 5
	cfg.Paylines = nil
	cfg.Paytable = map[string]float64{"1-6": 3, "2-5": 1}
	return cfg
}

func TestCluster_Evaluate(t *testing.T) {
	c := NewCluster(clusterConfig())
	m := model.Matrix{
		{1, 1, 1, 3, 4},
		{5, wild, 6, 2, 2},
		{1, 1, 8, 2, 2},
		{6, 3, 4, 2, 5},
		{6, 7, 8, 6, 3},
	}
	wins := c.Evaluate(m, 1, 1)
	if len(wins) != 2 {
		t.Fatalf("got %d wins: %+v", len(wins), wins)
	}
	if wins[0].Symbol != 1 || wins[0].Count != 6 || wins[0].Amount != 3 {
		t.Errorf("first cluster %+v", wins[0])
	}
	if wins[1].Symbol != 2 || wins[1].Count != 5 || wins[1].Amount != 1 {
		t.Errorf("second cluster %+v", wins[1])
	}
}

func TestCluster_SizeCap(t *testing.T) {
	cfg := clusterConfig()
	cfg.Paytable = map[string]float64{"1-15": 50, "1-16": 1000}
	c := NewCluster(cfg)
	m := model.Matrix{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	wins := c.Evaluate(m, 1, 1)
	if len(wins) != 1 || wins[0].Count != 16 || wins[0].Amount != 50 {
		t.Errorf("wins = %+v, want size 16 paying the 15 tier", wins)
	}
}

func TestCluster_TooSmall(t *testing.T) {
	c := NewCluster(clusterConfig())
	m := model.Matrix{
		{2, 2, 3, 4, 5},
		{2, 2, 4, 5, 6},
		{3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8},
		{5, 6, 7, 8, 3},
	}
	if wins := c.Evaluate(m, 1, 1); len(wins) != 0 {
		t.Errorf("cluster of 4 paid: %+v", wins)
	}
}

// Каждая клетка кластера соседствует с другой клеткой того же кластера, кластеры не пересекаются
func TestCluster_AdjacencyAndDisjoint(t *testing.T) {
	cfg := clusterConfig()
	cfg.Paytable = map[string]float64{}
	for sym := 1; sym <= 4; sym++ {
		for size := minClusterSize; size <= maxClusterTier; size++ {
			cfg.Paytable[model.PaytableKey(sym, size)] = 1
		}
	}
	c := NewCluster(cfg)
	src := rng.NewSeeded(77)
	symbols := []int{1, 2, 3, 4, wild}

	for n := 0; n < 2000; n++ {
		m := model.NewMatrix(5, 5)
		for r := range m {
			for k := range m[r] {
				m[r][k] = symbols[src.Intn(len(symbols))]
			}
		}
		seen := map[model.Position]bool{}
		for _, w := range c.Evaluate(m, 1, 1) {
			in := map[model.Position]bool{}
			for _, p := range w.Positions {
				if seen[p] {
					t.Fatalf("cell %v belongs to two clusters in %v", p, m)
				}
				seen[p] = true
				in[p] = true
			}
			for _, p := range w.Positions {
				adjacent := false
				for _, d := range dirs {
					if in[model.Position{Row: p.Row + d[0], Reel: p.Reel + d[1]}] {
						adjacent = true
						break
					}
				}
				if !adjacent {
					t.Fatalf("cell %v is not adjacent to its cluster in %v", p, m)
				}
				if cell := m[p.Row][p.Reel]; cell != w.Symbol && cell != wild {
					t.Fatalf("cell %v holds %d in a cluster of %d", p, cell, w.Symbol)
				}
			}
		}
	}
}
