package evaluator

import (
	"fmt"

	"go.uber.org/zap"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

// WinEvaluator Оценщик комбинаций одного из режимов: линии, пути, кластеры
type WinEvaluator interface {
	Mode() model.WinType
	Evaluate(m model.Matrix, betPerLine, multiplier float64) []model.Win
}

// NewWinEvaluator Выбор реализации по режиму один раз при инициализации
func NewWinEvaluator(cfg *model.GameConfig) (WinEvaluator, error) {
	switch cfg.WinType {
	case model.WinTypeLines, "":
		return NewLines(cfg)
	case model.WinTypeWays:
		return NewWays(cfg), nil
	case model.WinTypeCluster:
		return NewCluster(cfg), nil
	default:
		return nil, fmt.Errorf("%w: unknown win type %q", model.ErrConfig, cfg.WinType)
	}
}

// Evaluator Полная оценка спина: комбинации, скаттеры, бонус и джекпот
type Evaluator struct {
	wins    WinEvaluator
	scatter *ScatterResolver
	bonus   *BonusTriggerResolver
	jackpot *JackpotResolver
}

// New Собрать оценщик для конфигурации. src нужен только для джекпотов
func New(cfg *model.GameConfig, src rng.Source, logger *zap.Logger) (*Evaluator, error) {
	wins, err := NewWinEvaluator(cfg)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		wins:    wins,
		scatter: NewScatterResolver(cfg.ScatterRules),
		bonus:   NewBonusTriggerResolver(cfg.FreeSpinRules),
		jackpot: NewJackpotResolver(cfg.JackpotRules, src, logger),
	}, nil
}

// Mode Режим подсчёта
func (e *Evaluator) Mode() model.WinType { return e.wins.Mode() }

// EvaluateWins Оценка платного спина с розыгрышем джекпота
func (e *Evaluator) EvaluateWins(m model.Matrix, betPerLine, totalBet, multiplier float64) model.WinEvaluation {
	e.jackpot.Contribute(totalBet)
	res := e.evaluate(m, betPerLine, totalBet, multiplier)
	res.Jackpot = e.jackpot.Resolve(totalBet)
	res.TotalWin += res.Jackpot.WinAmount
	res.HitClass = model.ClassifyHit(res.TotalWin, totalBet)
	return res
}

// EvaluateBonusSpin Оценка фриспина: без отчислений и розыгрыша джекпота
func (e *Evaluator) EvaluateBonusSpin(m model.Matrix, betPerLine, totalBet, multiplier float64) model.WinEvaluation {
	res := e.evaluate(m, betPerLine, totalBet, multiplier)
	res.HitClass = model.ClassifyHit(res.TotalWin, totalBet)
	return res
}

func (e *Evaluator) evaluate(m model.Matrix, betPerLine, totalBet, multiplier float64) model.WinEvaluation {
	if multiplier <= 0 {
		multiplier = 1
	}
	res := model.WinEvaluation{
		Wins:        e.wins.Evaluate(m, betPerLine, multiplier),
		ScatterWins: e.scatter.Resolve(m, totalBet, multiplier),
		Bonus:       e.bonus.Resolve(m),
		TotalBet:    totalBet,
		Multiplier:  multiplier,
	}
	for _, w := range res.Wins {
		res.TotalWin += w.Amount
	}
	for _, s := range res.ScatterWins {
		res.TotalWin += s.Amount
	}
	return res
}

// Jackpots Текущие пулы джекпотов
func (e *Evaluator) Jackpots() []model.JackpotTier { return e.jackpot.Tiers() }
