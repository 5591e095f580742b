package reel

import (
	"fmt"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

// Engine Генератор игрового поля по ленточкам барабанов
type Engine struct {
	strips [][]int
	rows   int
	src    rng.Source
}

// New Создать движок. Отсутствующая или короткая лента это ошибка конфигурации
func New(cfg *model.GameConfig, src rng.Source) (*Engine, error) {
	if err := CheckStrips(cfg.ReelStrips, cfg.ReelsCount, cfg.RowsCount); err != nil {
		return nil, err
	}
	return &Engine{
		strips: cfg.ReelStrips[:cfg.ReelsCount],
		rows:   cfg.RowsCount,
		src:    src,
	}, nil
}

// CheckStrips Проверка лент: по одной на каждый барабан, длина не меньше числа рядов
func CheckStrips(strips [][]int, reels, rows int) error {
	if reels <= 0 || rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d", model.ErrConfig, reels, rows)
	}
	for r := 0; r < reels; r++ {
		if r >= len(strips) || len(strips[r]) == 0 {
			return fmt.Errorf("%w: reel %d has no strip", model.ErrConfig, r)
		}
		if len(strips[r]) < rows {
			return fmt.Errorf("%w: reel %d strip length %d is less than rows %d", model.ErrConfig, r, len(strips[r]), rows)
		}
	}
	return nil
}

// Rows Количество рядов
func (e *Engine) Rows() int { return e.rows }

// Strips Ленты барабанов
func (e *Engine) Strips() [][]int { return e.strips }

// GenerateSpinResult Один равномерный стоп на барабан, rows символов подряд с переходом через конец ленты
func (e *Engine) GenerateSpinResult() model.SpinResult {
	stops := make([]int, len(e.strips))
	for reel, strip := range e.strips {
		stops[reel] = e.src.Intn(len(strip))
	}
	return model.SpinResult{
		Matrix: window(e.strips, e.rows, stops),
		Stops:  stops,
	}
}

// Replay Восстановить поле по записанным стопам
func Replay(cfg *model.GameConfig, stops []int) (model.SpinResult, error) {
	if err := CheckStrips(cfg.ReelStrips, cfg.ReelsCount, cfg.RowsCount); err != nil {
		return model.SpinResult{}, err
	}
	if len(stops) != cfg.ReelsCount {
		return model.SpinResult{}, fmt.Errorf("%w: %d stops for %d reels", model.ErrConfig, len(stops), cfg.ReelsCount)
	}
	for reel, stop := range stops {
		if stop < 0 || stop >= len(cfg.ReelStrips[reel]) {
			return model.SpinResult{}, fmt.Errorf("%w: stop %d out of range on reel %d", model.ErrConfig, stop, reel)
		}
	}
	out := make([]int, len(stops))
	copy(out, stops)
	return model.SpinResult{
		Matrix: window(cfg.ReelStrips[:cfg.ReelsCount], cfg.RowsCount, out),
		Stops:  out,
	}, nil
}

// Window Поле для заданных стопов без проверок, для перебора всех комбинаций
func Window(strips [][]int, rows int, stops []int) model.Matrix {
	return window(strips, rows, stops)
}

func window(strips [][]int, rows int, stops []int) model.Matrix {
	m := model.NewMatrix(rows, len(strips))
	for reel, strip := range strips {
		for row := 0; row < rows; row++ {
			m[row][reel] = strip[(stops[reel]+row)%len(strip)]
		}
	}
	return m
}
