package rng

import "math"

// DegradedReporter Источник, который умеет сообщить о переходе на некриптографический генератор
type DegradedReporter interface {
	Degraded() bool
}

// Source Источник случайных чисел для движка
type Source interface {
	// Intn равномерное целое в [0, n)
	Intn(n int) int
	// Float64 равномерное число в [0, 1)
	Float64() float64
}

// uniform Равномерное целое без смещения по модулю (отбрасывание хвоста)
func uniform(next func() uint64, n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := next()
		if v < limit {
			return int(v % bound)
		}
	}
}

// unitFloat 53 старших бита в [0, 1)
func unitFloat(v uint64) float64 {
	return float64(v>>11) / (1 << 53)
}
