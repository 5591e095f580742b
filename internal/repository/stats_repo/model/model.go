package model

// TrackerState Внутреннее состояние трекера статистики сессии
type TrackerState struct {
	TotalSpins int     // Платные спины
	FreeSpins  int     // Сыгранные фриспины
	TotalBet   float64 // Сумма всех ставок
	TotalWin   float64 // Сумма всех выигрышей
	MaxWin     float64 // Наибольший выигрыш за спин
	HitCount   int     // Платные спины с ненулевым выигрышем

	Histogram map[string]int // Количество спинов по классам выигрыша

	Window     []Sample // Окно последних спинов
	WindowSize int      // Размер окна
	WindowBet  float64  // Сумма ставок в окне
	WindowWin  float64  // Сумма выигрышей в окне
}

// Sample Спин в окне
type Sample struct {
	Bet float64
	Win float64
}
