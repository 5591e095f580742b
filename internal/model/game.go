package model

import "strconv"

// WinType Режим подсчёта выигрыша
type WinType string

const (
	WinTypeLines   WinType = "lines"
	WinTypeWays    WinType = "ways"
	WinTypeCluster WinType = "cluster"
)

// MultiplierMode Режим множителя во фриспинах
type MultiplierMode string

const (
	MultiplierFixed        MultiplierMode = "fixed"
	MultiplierEscalating   MultiplierMode = "escalating"
	MultiplierPerRetrigger MultiplierMode = "per-retrigger"
)

// DefaultBonusType Тип бонуса по умолчанию
const DefaultBonusType = "freeSpins"

// GameConfig Конфигурация игры. Загружается один раз и не меняется в течение сессии
type GameConfig struct {
	ID               string             `yaml:"id" json:"id"`
	Name             string             `yaml:"name" json:"name"`
	ReelsCount       int                `yaml:"reelsCount" json:"reelsCount"`
	RowsCount        int                `yaml:"rowsCount" json:"rowsCount"`
	TargetRTP        float64            `yaml:"targetRTP" json:"targetRTP"`
	Volatility       string             `yaml:"volatility" json:"volatility"`
	ReelStrips       [][]int            `yaml:"reelStrips" json:"reelStrips"`
	SymbolWeights    map[int]SymbolInfo `yaml:"symbolWeights" json:"symbolWeights"`
	Paytable         map[string]float64 `yaml:"paytable" json:"paytable"`
	WinType          WinType            `yaml:"winType" json:"winType"`
	Paylines         [][]int            `yaml:"paylines" json:"paylines"`
	ScatterRules     []ScatterRule      `yaml:"scatterRules" json:"scatterRules"`
	WildRules        []WildRule         `yaml:"wildRules" json:"wildRules"`
	FreeSpinRules    *FreeSpinRule      `yaml:"freeSpinRules" json:"freeSpinRules"`
	JackpotRules     []JackpotTier      `yaml:"jackpotRules" json:"jackpotRules"`
	BetConfig        BetConfig          `yaml:"betConfig" json:"betConfig"`
	MaxWinMultiplier float64            `yaml:"maxWinMultiplier" json:"maxWinMultiplier"`
}

// SymbolInfo Вес и описание символа
type SymbolInfo struct {
	Weight   int    `yaml:"weight" json:"weight"`
	Category string `yaml:"category" json:"category"`
	Name     string `yaml:"name" json:"name"`
}

// WildRule Правило вайлда. Пустой SubstitutesFor значит замену любого не-скаттера, пустой Reels значит все барабаны
type WildRule struct {
	SymbolID       int             `yaml:"symbolId" json:"symbolId"`
	SubstitutesFor []int           `yaml:"substitutesFor" json:"substitutesFor"`
	Reels          []int           `yaml:"reels" json:"reels"`
	Multipliers    map[int]float64 `yaml:"multipliers" json:"multipliers"` // барабан -> множитель
}

// ScatterRule Скаттер платит независимо от позиции
type ScatterRule struct {
	SymbolID       int             `yaml:"symbolId" json:"symbolId"`
	MinCount       int             `yaml:"minCount" json:"minCount"`
	PayMultipliers map[int]float64 `yaml:"payMultipliers" json:"payMultipliers"`
}

// FreeSpinRule Правила бонусного раунда
type FreeSpinRule struct {
	TriggerSymbol            int            `yaml:"triggerSymbol" json:"triggerSymbol"`
	MinCount                 int            `yaml:"minCount" json:"minCount"`
	SpinsAwarded             map[int]int    `yaml:"spinsAwarded" json:"spinsAwarded"`
	RetriggerEnabled         bool           `yaml:"retriggerEnabled" json:"retriggerEnabled"`
	RetriggerMinCount        int            `yaml:"retriggerMinCount" json:"retriggerMinCount"`
	RetriggerSpins           map[int]int    `yaml:"retriggerSpins" json:"retriggerSpins"`
	MaxRetriggers            int            `yaml:"maxRetriggers" json:"maxRetriggers"`
	MultiplierMode           MultiplierMode `yaml:"multiplierMode" json:"multiplierMode"`
	BaseMultiplier           float64        `yaml:"baseMultiplier" json:"baseMultiplier"`
	EscalationStep           float64        `yaml:"escalationStep" json:"escalationStep"`
	MaxMultiplier            float64        `yaml:"maxMultiplier" json:"maxMultiplier"`
	RetriggerMultiplierBonus float64        `yaml:"retriggerMultiplierBonus" json:"retriggerMultiplierBonus"`
	BonusType                string         `yaml:"bonusType" json:"bonusType"`
	BuyCostMultiplier        float64        `yaml:"buyCostMultiplier" json:"buyCostMultiplier"` // 0 значит покупка недоступна
}

// JackpotTier Уровень джекпота
type JackpotTier struct {
	Name             string  `yaml:"name" json:"name"`
	SeedAmount       float64 `yaml:"seedAmount" json:"seedAmount"`
	Pool             float64 `yaml:"pool" json:"pool"`
	Probability      float64 `yaml:"probability" json:"probability"`
	QualifyingBet    float64 `yaml:"qualifyingBet" json:"qualifyingBet"`
	ContributionRate float64 `yaml:"contributionRate" json:"contributionRate"`
}

// BetConfig Настройки ставок
type BetConfig struct {
	DefaultBet     float64   `yaml:"defaultBet" json:"defaultBet"`
	Bets           []float64 `yaml:"bets" json:"bets"`
	DefaultLines   int       `yaml:"defaultLines" json:"defaultLines"`
	CostMultiplier float64   `yaml:"costMultiplier" json:"costMultiplier"`
}

// DefaultPaylines 20 линий для поля 5x3
var DefaultPaylines = [][]int{
	{1, 1, 1, 1, 1}, {0, 0, 0, 0, 0}, {2, 2, 2, 2, 2}, {0, 1, 2, 1, 0}, {2, 1, 0, 1, 2},
	{0, 0, 1, 2, 2}, {2, 2, 1, 0, 0}, {1, 0, 0, 0, 1}, {1, 2, 2, 2, 1}, {0, 1, 0, 1, 0},
	{2, 1, 2, 1, 2}, {1, 0, 1, 0, 1}, {1, 2, 1, 2, 1}, {0, 1, 1, 1, 0}, {2, 1, 1, 1, 2},
	{0, 0, 1, 0, 0}, {2, 2, 1, 2, 2}, {1, 0, 1, 2, 1}, {1, 2, 1, 0, 1}, {0, 2, 0, 2, 0},
}

// RTPFraction RTP в долях. Значение больше 1 считается процентами: 96 это 0.96
func RTPFraction(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

// PaytableKey Ключ таблицы выплат "<символ>-<количество>"
func PaytableKey(symbol, count int) string {
	return strconv.Itoa(symbol) + "-" + strconv.Itoa(count)
}

// Pay Множитель выплаты. Отсутствие ключа это ноль, а не ошибка
func (c *GameConfig) Pay(symbol, count int) float64 {
	return c.Paytable[PaytableKey(symbol, count)]
}

// CostMultiplier Во сколько раз полная ставка больше ставки на линию
func (c *GameConfig) CostMultiplier() float64 {
	if c.BetConfig.CostMultiplier > 0 {
		return c.BetConfig.CostMultiplier
	}
	if c.WinType == WinTypeLines && len(c.Paylines) > 0 {
		return float64(len(c.Paylines))
	}
	return 1
}

// TotalBet Полная ставка за спин
func (c *GameConfig) TotalBet(betPerLine float64) float64 {
	return betPerLine * c.CostMultiplier()
}

// ScatterSymbols Символы, которые никогда не участвуют в линиях, путях и кластерах
func (c *GameConfig) ScatterSymbols() map[int]bool {
	out := make(map[int]bool)
	for _, r := range c.ScatterRules {
		out[r.SymbolID] = true
	}
	if c.FreeSpinRules != nil {
		out[c.FreeSpinRules.TriggerSymbol] = true
	}
	for id, info := range c.SymbolWeights {
		if info.Category == "scatter" {
			out[id] = true
		}
	}
	return out
}
