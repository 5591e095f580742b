package model

// Matrix Игровое поле [ряд][барабан]
type Matrix [][]int

// NewMatrix Пустое поле rows x reels
func NewMatrix(rows, reels int) Matrix {
	m := make(Matrix, rows)
	for r := range m {
		m[r] = make([]int, reels)
	}
	return m
}

// Rows Количество рядов
func (m Matrix) Rows() int { return len(m) }

// Reels Количество барабанов
func (m Matrix) Reels() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Count Сколько раз символ встречается на поле
func (m Matrix) Count(symbol int) int {
	n := 0
	for _, row := range m {
		for _, s := range row {
			if s == symbol {
				n++
			}
		}
	}
	return n
}

// Positions Позиции символа на поле
func (m Matrix) Positions(symbol int) []Position {
	var out []Position
	for r, row := range m {
		for c, s := range row {
			if s == symbol {
				out = append(out, Position{Row: r, Reel: c})
			}
		}
	}
	return out
}

// Position Клетка поля
type Position struct {
	Row  int `json:"row"`
	Reel int `json:"reel"`
}

// SpinResult Результат вращения барабанов
type SpinResult struct {
	Matrix Matrix `json:"matrix"`
	Stops  []int  `json:"stops"`
}

// WinKind Тип выигрышной комбинации
type WinKind string

const (
	WinKindLine    WinKind = "line"
	WinKindWays    WinKind = "ways"
	WinKindCluster WinKind = "cluster"
)

// Win Выигрыш по линии, путям или кластеру
type Win struct {
	Kind           WinKind    `json:"kind"`
	Line           int        `json:"line,omitempty"` // номер линии с 1
	Symbol         int        `json:"symbol"`
	Count          int        `json:"count"` // длина совпадения, число барабанов или размер кластера
	Ways           int        `json:"ways,omitempty"`
	WildMultiplier float64    `json:"wildMultiplier,omitempty"`
	Positions      []Position `json:"positions"`
	Amount         float64    `json:"amount"`
}

// ScatterWin Выигрыш по скаттеру
type ScatterWin struct {
	Symbol     int        `json:"symbol"`
	Count      int        `json:"count"`
	Multiplier float64    `json:"multiplier"`
	Positions  []Position `json:"positions"`
	Amount     float64    `json:"amount"`
}

// BonusTrigger Результат проверки запуска бонуса
type BonusTrigger struct {
	Triggered    bool   `json:"triggered"`
	Count        int    `json:"count"`
	SpinsAwarded int    `json:"spinsAwarded"`
	Retrigger    bool   `json:"retrigger"`
	BonusType    string `json:"bonusType,omitempty"`
}

// JackpotResult Результат розыгрыша джекпота
type JackpotResult struct {
	Won       bool    `json:"won"`
	Tier      string  `json:"tier,omitempty"`
	WinAmount float64 `json:"winAmount"`
}

// WinEvaluation Итог оценки одного спина
type WinEvaluation struct {
	Wins        []Win         `json:"wins"`
	ScatterWins []ScatterWin  `json:"scatterWins"`
	Bonus       BonusTrigger  `json:"bonus"`
	Jackpot     JackpotResult `json:"jackpot"`
	TotalBet    float64       `json:"totalBet"`
	Multiplier  float64       `json:"multiplier"`
	TotalWin    float64       `json:"totalWin"`
	HitClass    HitClass      `json:"hitClass"`
}

// ItemizedSum Сумма всех выигрышей по отдельности
func (e WinEvaluation) ItemizedSum() float64 {
	sum := e.Jackpot.WinAmount
	for _, w := range e.Wins {
		sum += w.Amount
	}
	for _, s := range e.ScatterWins {
		sum += s.Amount
	}
	return sum
}

// PlayResult Результат одного спина игровой сессии
type PlayResult struct {
	Spin       SpinResult       `json:"spin"`
	Evaluation WinEvaluation    `json:"evaluation"`
	BetPerLine float64          `json:"betPerLine"`
	TotalBet   float64          `json:"totalBet"`
	Payout     float64          `json:"payout"` // выигрыш с учётом лимита
	Capped     bool             `json:"capped"`
	FreeSpin   *FreeSpinRecord  `json:"freeSpin,omitempty"`
	Triggered  bool             `json:"triggered"`
	Bonus      FreeSpinState    `json:"bonus"`
	Summary    *FreeSpinSummary `json:"summary,omitempty"`
	Nonce      uint64           `json:"nonce"`
}
