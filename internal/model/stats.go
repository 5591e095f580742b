package model

// HitClass Класс выигрыша по отношению выигрыш/ставка
type HitClass string

const (
	HitNone     HitClass = "none"
	HitMinor    HitClass = "minor"
	HitStandard HitClass = "standard"
	HitBig      HitClass = "big"
	HitMega     HitClass = "mega"
	HitSuper    HitClass = "super"
	HitJackpot  HitClass = "jackpot"
)

// HitClasses Все классы по возрастанию
var HitClasses = []HitClass{HitNone, HitMinor, HitStandard, HitBig, HitMega, HitSuper, HitJackpot}

// ClassifyHit Классификация выигрыша
func ClassifyHit(win, bet float64) HitClass {
	if win <= 0 {
		return HitNone
	}
	if bet <= 0 {
		return HitJackpot
	}
	ratio := win / bet
	switch {
	case ratio < 1:
		return HitMinor
	case ratio < 5:
		return HitStandard
	case ratio < 15:
		return HitBig
	case ratio < 50:
		return HitMega
	case ratio < 200:
		return HitSuper
	default:
		return HitJackpot
	}
}

// SpinSample Пара ставка/выигрыш для скользящего окна
type SpinSample struct {
	Bet float64 `json:"bet"`
	Win float64 `json:"win"`
}

// SessionStats Снимок статистики сессии
type SessionStats struct {
	TotalSpins   int              `json:"totalSpins"`
	FreeSpins    int              `json:"freeSpins"`
	TotalBet     float64          `json:"totalBet"`
	TotalWin     float64          `json:"totalWin"`
	MaxWin       float64          `json:"maxWin"`
	HitCount     int              `json:"hitCount"`
	Histogram    map[HitClass]int `json:"histogram"`
	Window       []SpinSample     `json:"window"`
	WindowSize   int              `json:"windowSize"`
	SessionRTP   float64          `json:"sessionRTP"`
	RollingRTP   float64          `json:"rollingRTP"`
	HitFrequency float64          `json:"hitFrequency"`
}

// SessionInfo Открытая игровая сессия
type SessionInfo struct {
	ID             string `json:"id"`
	GameID         string `json:"gameId"`
	AccessToken    string `json:"accessToken,omitempty"`
	ServerSeedHash string `json:"serverSeedHash,omitempty"`
	ClientSeed     string `json:"clientSeed,omitempty"`
}

// SessionClose Итог закрытой сессии
type SessionClose struct {
	Stats          SessionStats     `json:"stats"`
	ServerSeed     string           `json:"serverSeed,omitempty"`
	ServerSeedHash string           `json:"serverSeedHash,omitempty"`
	ClientSeed     string           `json:"clientSeed,omitempty"`
	Nonce          uint64           `json:"nonce"`
	Aborted        *FreeSpinSummary `json:"aborted,omitempty"`
	RNGDegraded    bool             `json:"rngDegraded"`
}
