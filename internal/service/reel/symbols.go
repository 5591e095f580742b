package reel

import (
	"fmt"
	"sort"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

// DefaultStripLength Длина синтезируемой ленты по умолчанию
const DefaultStripLength = 40

// SymbolGenerator Взвешенный случайный символ. Только для декоративных целей, результат спина он не определяет
type SymbolGenerator struct {
	ids        []int
	cumulative []int
	total      int
	src        rng.Source
}

// NewSymbolGenerator Генератор по весам символов
func NewSymbolGenerator(weights map[int]model.SymbolInfo, src rng.Source) (*SymbolGenerator, error) {
	ids := make([]int, 0, len(weights))
	for id, info := range weights {
		if info.Weight < 0 {
			return nil, fmt.Errorf("%w: symbol %d has negative weight", model.ErrConfig, id)
		}
		if info.Weight > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no weighted symbols", model.ErrConfig)
	}
	// порядок фиксирован, иначе одинаковый сид даёт разные символы
	sort.Ints(ids)

	g := &SymbolGenerator{ids: ids, cumulative: make([]int, len(ids)), src: src}
	for i, id := range ids {
		g.total += weights[id].Weight
		g.cumulative[i] = g.total
	}
	return g, nil
}

// Next Следующий символ
func (g *SymbolGenerator) Next() int {
	r := g.src.Intn(g.total)
	i := sort.SearchInts(g.cumulative, r+1)
	return g.ids[i]
}

// BuildStrips Синтез лент по весам символов. Используется только офлайн, при загрузке ленты не генерируются
func BuildStrips(weights map[int]model.SymbolInfo, reels, length int, src rng.Source) ([][]int, error) {
	if reels <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: strips %dx%d", model.ErrConfig, reels, length)
	}
	gen, err := NewSymbolGenerator(weights, src)
	if err != nil {
		return nil, err
	}
	strips := make([][]int, reels)
	for r := range strips {
		strip := make([]int, length)
		for i := range strip {
			strip[i] = gen.Next()
		}
		strips[r] = strip
	}
	return strips, nil
}
