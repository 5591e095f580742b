package session

type OpenRequest struct {
	GameID     string `json:"gameId"`
	ClientSeed string `json:"clientSeed"` // Необязательный, генерируется сервером
}

type OpenResponse struct {
	SessionID      string `json:"sessionId"`
	AccessToken    string `json:"accessToken"`
	ServerSeedHash string `json:"serverSeedHash"` // Коммит серверного сида
	ClientSeed     string `json:"clientSeed"`
}

type SpinRequest struct {
	BetPerLine float64 `json:"betPerLine"` // Ставка на линию, должна быть из списка игры
}

type SpinResponse struct {
	Matrix      [][]int          `json:"matrix"` // [ряд][барабан]
	Stops       []int            `json:"stops"`
	Wins        []Win            `json:"wins"`
	ScatterWins []ScatterWin     `json:"scatterWins"`
	Jackpot     *Jackpot         `json:"jackpot,omitempty"`
	BetPerLine  float64          `json:"betPerLine"`
	TotalBet    float64          `json:"totalBet"`   // 0 для фриспина
	TotalWin    float64          `json:"totalWin"`   // Сумма выигрышей до лимита
	Payout      float64          `json:"payout"`     // Выплата с учётом лимита
	Capped      bool             `json:"capped"`     // Сработал лимит выигрыша
	Multiplier  float64          `json:"multiplier"` // Множитель спина
	HitClass    string           `json:"hitClass"`
	FreeSpin    bool             `json:"freeSpin"`  // Спин сыгран в бонусном раунде
	Triggered   bool             `json:"triggered"` // Спин запустил бонусный раунд
	Bonus       FreeSpinState    `json:"bonus"`
	Summary     *FreeSpinSummary `json:"summary,omitempty"` // Итог, если раунд завершился этим спином
	Nonce       uint64           `json:"nonce"`
}

type Win struct {
	Kind           string   `json:"kind"`
	Line           int      `json:"line,omitempty"`
	Symbol         int      `json:"symbol"`
	Count          int      `json:"count"`
	Ways           int      `json:"ways,omitempty"`
	WildMultiplier float64  `json:"wildMultiplier,omitempty"`
	Positions      [][2]int `json:"positions"` // [ряд, барабан]
	Amount         float64  `json:"amount"`
}

type ScatterWin struct {
	Symbol    int      `json:"symbol"`
	Count     int      `json:"count"`
	Positions [][2]int `json:"positions"`
	Amount    float64  `json:"amount"`
}

type Jackpot struct {
	Tier   string  `json:"tier"`
	Amount float64 `json:"amount"`
}

type FreeSpinState struct {
	Phase             string  `json:"phase"`
	Active            bool    `json:"active"`
	TotalSpins        int     `json:"totalSpins"`
	RemainingSpins    int     `json:"remainingSpins"`
	CurrentSpin       int     `json:"currentSpin"`
	CurrentMultiplier float64 `json:"currentMultiplier"`
	RetriggerCount    int     `json:"retriggerCount"`
	CumulativeWin     float64 `json:"cumulativeWin"`
}

type FreeSpinSummary struct {
	TotalSpins      int     `json:"totalSpins"`
	CumulativeWin   float64 `json:"cumulativeWin"`
	RetriggerCount  int     `json:"retriggerCount"`
	FinalMultiplier float64 `json:"finalMultiplier"`
}

type StatsResponse struct {
	TotalSpins   int            `json:"totalSpins"`
	FreeSpins    int            `json:"freeSpins"`
	TotalBet     float64        `json:"totalBet"`
	TotalWin     float64        `json:"totalWin"`
	MaxWin       float64        `json:"maxWin"`
	SessionRTP   float64        `json:"sessionRTP"`   // %
	RollingRTP   float64        `json:"rollingRTP"`   // % по скользящему окну
	HitFrequency float64        `json:"hitFrequency"` // %
	WindowSize   int            `json:"windowSize"`
	Histogram    map[string]int `json:"histogram"`
}

type CloseResponse struct {
	Stats          StatsResponse    `json:"stats"`
	ServerSeed     string           `json:"serverSeed"`
	ServerSeedHash string           `json:"serverSeedHash"`
	ClientSeed     string           `json:"clientSeed"`
	Nonce          uint64           `json:"nonce"`
	Aborted        *FreeSpinSummary `json:"aborted,omitempty"` // Незавершённый бонусный раунд
	RNGDegraded    bool             `json:"rngDegraded"`
}
