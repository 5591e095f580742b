package evaluator

import "slot_engine/internal/model"

const (
	wild    = 9
	scatter = 10
)

// seqSource Источник с заранее заданной последовательностью значений
type seqSource struct {
	floats []float64
	i      int
}

func (s *seqSource) Intn(int) int { return 0 }

func (s *seqSource) Float64() float64 {
	f := s.floats[s.i%len(s.floats)]
	s.i++
	return f
}

func baseConfig(winType model.WinType) *model.GameConfig {
	return &model.GameConfig{
		ReelsCount: 5,
		RowsCount:  3,
		WinType:    winType,
		Paylines:   model.DefaultPaylines,
		Paytable:   map[string]float64{},
		WildRules:  []model.WildRule{{SymbolID: wild}},
		ScatterRules: []model.ScatterRule{
			{SymbolID: scatter, MinCount: 3, PayMultipliers: map[int]float64{3: 2, 4: 10, 5: 50}},
		},
		FreeSpinRules: &model.FreeSpinRule{
			TriggerSymbol:    scatter,
			MinCount:         3,
			SpinsAwarded:     map[int]int{3: 10, 4: 15, 5: 25},
			RetriggerEnabled: true,
		},
	}
}
