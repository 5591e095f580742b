package model

// FreeSpinPhase Фаза бонусного раунда
type FreeSpinPhase string

const (
	PhaseIdle           FreeSpinPhase = "idle"
	PhaseIntro          FreeSpinPhase = "intro"
	PhaseSpin           FreeSpinPhase = "spin"
	PhaseRetriggerCheck FreeSpinPhase = "retrigger_check"
	PhaseOutro          FreeSpinPhase = "outro"
)

// FreeSpinState Состояние бонусного раунда
type FreeSpinState struct {
	Phase             FreeSpinPhase    `json:"phase"`
	Active            bool             `json:"active"`
	TotalSpins        int              `json:"totalSpins"`
	RemainingSpins    int              `json:"remainingSpins"`
	CurrentSpin       int              `json:"currentSpin"`
	CurrentMultiplier float64          `json:"currentMultiplier"`
	RetriggerCount    int              `json:"retriggerCount"`
	CumulativeWin     float64          `json:"cumulativeWin"`
	TriggerBet        float64          `json:"triggerBet"`
	History           []FreeSpinRecord `json:"history"`
	// Recorded Сколько записей истории уже учтено в статистике
	Recorded int `json:"recorded"`
}

// FreeSpinRecord Один сыгранный фриспин
type FreeSpinRecord struct {
	Spin        int      `json:"spin"`
	Multiplier  float64  `json:"multiplier"`
	Stops       []int    `json:"stops"`
	Matrix      Matrix   `json:"matrix"`
	Win         float64  `json:"win"`
	Retriggered bool     `json:"retriggered"`
	SpinsAdded  int      `json:"spinsAdded"`
	HitClass    HitClass `json:"hitClass"`
}

// FreeSpinSummary Итог бонусного раунда
type FreeSpinSummary struct {
	TotalSpins      int              `json:"totalSpins"`
	CumulativeWin   float64          `json:"cumulativeWin"`
	RetriggerCount  int              `json:"retriggerCount"`
	FinalMultiplier float64          `json:"finalMultiplier"`
	History         []FreeSpinRecord `json:"history"`
}
