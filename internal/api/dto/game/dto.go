package game

type ImportResponse struct {
	ID      string `json:"id"`      // ID игры
	Version int    `json:"version"` // Номер сохранённой версии
}

type GameSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WinType    string    `json:"winType"`    // lines, ways, cluster
	ReelsCount int       `json:"reelsCount"` // Количество барабанов
	RowsCount  int       `json:"rowsCount"`  // Количество рядов
	TargetRTP  float64   `json:"targetRTP"`
	Volatility string    `json:"volatility"`
	Bets       []float64 `json:"bets"`      // Доступные ставки на линию
	FreeSpins  bool      `json:"freeSpins"` // Есть ли бонусный раунд
	Jackpots   []string  `json:"jackpots"`
}

type ListResponse struct {
	Games []GameSummary `json:"games"`
}
