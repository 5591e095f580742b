package evaluator

import (
	"testing"

	"slot_engine/internal/model"
)

func TestLines_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		row    []int
		pay    map[string]float64
		wild   model.WildRule
		symbol int
		count  int
		amount float64
	}{
		{
			name:   "three sevens",
			row:    []int{7, 7, 7, 2, 3},
			pay:    map[string]float64{"7-3": 30},
			symbol: 7, count: 3, amount: 30,
		},
		{
			name:   "wild in the middle",
			row:    []int{7, wild, 7, 7, 3},
			pay:    map[string]float64{"7-4": 40},
			symbol: 7, count: 4, amount: 40,
		},
		{
			name:   "leading wilds count toward pay symbol",
			row:    []int{wild, wild, 5, 5, 1},
			pay:    map[string]float64{"5-4": 12},
			symbol: 5, count: 4, amount: 12,
		},
		{
			name:   "wild multiplier on reel 2",
			row:    []int{7, wild, 7, 1, 1},
			pay:    map[string]float64{"7-3": 30},
			wild:   model.WildRule{SymbolID: wild, Multipliers: map[int]float64{1: 2}},
			symbol: 7, count: 3, amount: 60,
		},
		{
			name:   "all wild pays as wild",
			row:    []int{wild, wild, wild, wild, wild},
			pay:    map[string]float64{"9-5": 500},
			symbol: wild, count: 5, amount: 500,
		},
		{
			name:   "all wild with multipliers",
			row:    []int{wild, wild, wild, wild, wild},
			pay:    map[string]float64{"9-5": 100},
			wild:   model.WildRule{SymbolID: wild, Multipliers: map[int]float64{1: 2, 3: 3}},
			symbol: wild, count: 5, amount: 600,
		},
		{
			name:   "wild run before scatter keeps multipliers",
			row:    []int{wild, wild, scatter, 1, 1},
			pay:    map[string]float64{"9-2": 5},
			wild:   model.WildRule{SymbolID: wild, Multipliers: map[int]float64{1: 4}},
			symbol: wild, count: 2, amount: 20,
		},
		{
			name:   "wilds before scatter pay as wild run",
			row:    []int{wild, wild, scatter, 1, 1},
			pay:    map[string]float64{"9-2": 5},
			symbol: wild, count: 2, amount: 5,
		},
		{
			name:   "wild that cannot substitute pays as wild run",
			row:    []int{wild, wild, wild, 4, 4},
			pay:    map[string]float64{"9-3": 25, "4-5": 100},
			wild:   model.WildRule{SymbolID: wild, SubstitutesFor: []int{1, 2, 3}},
			symbol: wild, count: 3, amount: 25,
		},
		{
			name:   "wild on ineligible reel breaks the run",
			row:    []int{7, 7, wild, 7, 7},
			pay:    map[string]float64{"7-2": 1, "7-5": 100},
			wild:   model.WildRule{SymbolID: wild, Reels: []int{1, 3}},
			symbol: 7, count: 2, amount: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(model.WinTypeLines)
			cfg.Paylines = [][]int{{1, 1, 1, 1, 1}}
			cfg.Paytable = tt.pay
			if tt.wild.SymbolID != 0 {
				cfg.WildRules = []model.WildRule{tt.wild}
			}
			l, err := NewLines(cfg)
			if err != nil {
				t.Fatal(err)
			}
			m := model.Matrix{{0, 0, 0, 0, 0}, tt.row, {0, 0, 0, 0, 0}}
			wins := l.Evaluate(m, 1, 1)
			if len(wins) != 1 {
				t.Fatalf("got %d wins: %+v", len(wins), wins)
			}
			w := wins[0]
			if w.Symbol != tt.symbol || w.Count != tt.count || w.Amount != tt.amount {
				t.Errorf("win = {symbol %d count %d amount %v}, want {%d %d %v}", w.Symbol, w.Count, w.Amount, tt.symbol, tt.count, tt.amount)
			}
			if w.Line != 1 || len(w.Positions) != w.Count {
				t.Errorf("line %d positions %v", w.Line, w.Positions)
			}
		})
	}
}

func TestLines_NoWin(t *testing.T) {
	tests := []struct {
		name string
		row  []int
	}{
		{"single symbol", []int{7, 1, 7, 7, 7}},
		{"missing paytable entry", []int{3, 3, 3, 1, 2}},
		{"scatters never pay on lines", []int{scatter, scatter, scatter, scatter, scatter}},
		{"scatter first", []int{scatter, 7, 7, 7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(model.WinTypeLines)
			cfg.Paylines = [][]int{{1, 1, 1, 1, 1}}
			cfg.Paytable = map[string]float64{"7-1": 5, "7-3": 30, "10-5": 100}
			l, err := NewLines(cfg)
			if err != nil {
				t.Fatal(err)
			}
			m := model.Matrix{{0, 0, 0, 0, 0}, tt.row, {0, 0, 0, 0, 0}}
			if wins := l.Evaluate(m, 1, 1); len(wins) != 0 {
				t.Errorf("unexpected wins %+v", wins)
			}
		})
	}
}

func TestLines_BetAndMultiplier(t *testing.T) {
	cfg := baseConfig(model.WinTypeLines)
	cfg.Paytable = map[string]float64{"7-3": 30}
	l, err := NewLines(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m := model.Matrix{
		{1, 2, 3, 4, 5},
		{7, 7, 7, 2, 3},
		{2, 3, 4, 5, 6},
	}
	wins := l.Evaluate(m, 0.5, 3)
	if len(wins) != 1 || wins[0].Amount != 45 {
		t.Errorf("wins = %+v, want one win of 45", wins)
	}
}

func TestNewLines_InvalidPaylines(t *testing.T) {
	tests := []struct {
		name     string
		paylines [][]int
	}{
		{"none", nil},
		{"short", [][]int{{1, 1, 1}}},
		{"row out of range", [][]int{{1, 1, 3, 1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(model.WinTypeLines)
			cfg.Paylines = tt.paylines
			if _, err := NewLines(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
