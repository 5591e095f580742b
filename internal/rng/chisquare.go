package rng

import "math"

// ChiSquareResult Результат проверки равномерности
type ChiSquareResult struct {
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degreesOfFreedom"`
	Critical         float64 `json:"critical"`
	Pass             bool    `json:"pass"`
}

// z-квантиль для p = 0.001
const chiSquareZ = 3.090232

// ChiSquare Статистика хи-квадрат против равномерного распределения
func ChiSquare(counts []int) ChiSquareResult {
	total := 0
	for _, c := range counts {
		total += c
	}
	df := len(counts) - 1
	if df < 1 || total == 0 {
		return ChiSquareResult{DegreesOfFreedom: df}
	}

	expected := float64(total) / float64(len(counts))
	stat := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}

	// аппроксимация Уилсона-Хилферти
	k := float64(df)
	a := 2 / (9 * k)
	critical := k * math.Pow(1-a+chiSquareZ*math.Sqrt(a), 3)

	return ChiSquareResult{
		Statistic:        stat,
		DegreesOfFreedom: df,
		Critical:         critical,
		Pass:             stat <= critical,
	}
}

// Uniformity Проверить источник на равномерность по buckets корзинам
func Uniformity(src Source, buckets, samples int) ChiSquareResult {
	counts := make([]int, buckets)
	for i := 0; i < samples; i++ {
		counts[src.Intn(buckets)]++
	}
	return ChiSquare(counts)
}
