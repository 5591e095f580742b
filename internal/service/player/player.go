package player

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
	"slot_engine/internal/service/evaluator"
	"slot_engine/internal/service/freespin"
	"slot_engine/internal/service/reel"
)

// StatsRecorder Хранилище статистики сессии
type StatsRecorder interface {
	RecordSpin(bet, win float64)
	RecordFreeSpin(win, triggerBet float64)
	SessionRTP() float64
	RollingRTP() float64
	HitFrequency() float64
	Snapshot() model.SessionStats
}

// Options Зависимости игровой сессии
type Options struct {
	Source    rng.Source
	Fair      *rng.Fair
	Stats     StatsRecorder
	Validator BetValidator
	Observers []freespin.Observer
	Logger    *zap.Logger
}

// Player Игровая сессия: свой движок, свой бонусный раунд, своя статистика
type Player struct {
	mtx sync.Mutex

	cfg       *model.GameConfig
	engine    *reel.Engine
	eval      *evaluator.Evaluator
	bonus     *freespin.Session
	stats     StatsRecorder
	validator BetValidator
	fair      *rng.Fair
	src       rng.Source
	logger    *zap.Logger

	bonusBetPerLine float64
	closed          bool
	closeResult     model.SessionClose
}

// New Собрать сессию для конфигурации
func New(cfg *model.GameConfig, opts Options) (*Player, error) {
	if opts.Stats == nil {
		return nil, fmt.Errorf("player: stats recorder is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Validator == nil {
		opts.Validator = AllowedBets
	}
	src := opts.Source
	if opts.Fair != nil {
		src = opts.Fair
	}
	if src == nil {
		src = rng.NewCrypto(opts.Logger)
	}

	engine, err := reel.New(cfg, src)
	if err != nil {
		return nil, err
	}
	eval, err := evaluator.New(cfg, src, opts.Logger)
	if err != nil {
		return nil, err
	}

	p := &Player{
		cfg:       cfg,
		engine:    engine,
		eval:      eval,
		stats:     opts.Stats,
		validator: opts.Validator,
		fair:      opts.Fair,
		src:       src,
		logger:    opts.Logger,
	}
	p.bonus = freespin.NewSession(cfg.FreeSpinRules, p.recordFreeSpins, opts.Observers...)
	return p, nil
}

// Config Конфигурация игры
func (p *Player) Config() *model.GameConfig { return p.cfg }

// Spin Платный спин или очередной фриспин, если бонусный раунд активен
func (p *Player) Spin(ctx context.Context, betPerLine float64) (*model.PlayResult, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return nil, model.ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		res *model.PlayResult
		err error
	)
	if p.bonus.IsActive() {
		res, err = p.freeSpin()
	} else {
		res, err = p.paidSpin(betPerLine)
	}
	if err != nil {
		return nil, err
	}

	if p.fair != nil {
		res.Nonce = p.fair.Nonce()
		p.fair.Advance()
	}
	res.Bonus = p.bonus.State()
	return res, nil
}

func (p *Player) paidSpin(betPerLine float64) (*model.PlayResult, error) {
	if err := p.validator.ValidateBet(p.cfg, betPerLine); err != nil {
		return nil, err
	}
	totalBet := p.cfg.TotalBet(betPerLine)

	spin := p.engine.GenerateSpinResult()
	ev := p.eval.EvaluateWins(spin.Matrix, betPerLine, totalBet, 1)
	payout, capped := p.capWin(ev.TotalWin, totalBet)
	p.stats.RecordSpin(totalBet, payout)

	triggered, err := p.bonus.TriggerFrom(ev)
	if err != nil {
		return nil, err
	}
	if triggered {
		p.bonusBetPerLine = betPerLine
	}

	return &model.PlayResult{
		Spin:       spin,
		Evaluation: ev,
		BetPerLine: betPerLine,
		TotalBet:   totalBet,
		Payout:     payout,
		Capped:     capped,
		Triggered:  triggered,
	}, nil
}

func (p *Player) freeSpin() (*model.PlayResult, error) {
	res := &model.PlayResult{BetPerLine: p.bonusBetPerLine}
	record, summary, err := p.bonus.Step(freespin.CyclerFunc(p.cycle(res)))
	if err != nil {
		return nil, err
	}
	res.FreeSpin = &record
	res.Summary = summary
	return res, nil
}

// cycle Цикл фриспина. В историю раунда идёт выплата с учётом лимита
func (p *Player) cycle(out *model.PlayResult) func(float64) (model.SpinResult, model.WinEvaluation) {
	return func(multiplier float64) (model.SpinResult, model.WinEvaluation) {
		triggerBet := p.bonus.TriggerBet()
		spin := p.engine.GenerateSpinResult()
		ev := p.eval.EvaluateBonusSpin(spin.Matrix, p.bonusBetPerLine, triggerBet, multiplier)
		payout, capped := p.capWin(ev.TotalWin, triggerBet)

		out.Spin, out.Evaluation = spin, ev
		out.Payout, out.Capped = payout, capped

		paid := ev
		paid.TotalWin = payout
		return spin, paid
	}
}

// capWin Лимит выигрыша за спин в кратности полной ставки
func (p *Player) capWin(win, totalBet float64) (float64, bool) {
	if p.cfg.MaxWinMultiplier <= 0 {
		return win, false
	}
	limit := p.cfg.MaxWinMultiplier * totalBet
	if win > limit {
		return limit, true
	}
	return win, false
}

func (p *Player) recordFreeSpins(triggerBet float64, records []model.FreeSpinRecord) {
	for _, r := range records {
		p.stats.RecordFreeSpin(r.Win, triggerBet)
	}
}

// BuyBonus Покупка бонусного раунда за BuyCostMultiplier полных ставок.
// Раунд получает столько же спинов, сколько даёт минимальный запуск
func (p *Player) BuyBonus(ctx context.Context, betPerLine float64) (*model.PlayResult, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return nil, model.ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rule := p.cfg.FreeSpinRules
	if rule == nil || rule.BuyCostMultiplier <= 0 {
		return nil, fmt.Errorf("%w: bonus buy is not offered", model.ErrBetRejected)
	}
	// Ограничение покупки, если фриспины уже идут
	if p.bonus.IsActive() {
		return nil, model.ErrBonusActive
	}
	if err := p.validator.ValidateBet(p.cfg, betPerLine); err != nil {
		return nil, err
	}

	spins := evaluator.SpinsFor(rule.SpinsAwarded, rule.MinCount, rule.MinCount)
	if spins <= 0 {
		return nil, fmt.Errorf("%w: no free spins for %d trigger symbols", model.ErrConfig, rule.MinCount)
	}
	totalBet := p.cfg.TotalBet(betPerLine)
	price := totalBet * rule.BuyCostMultiplier

	if err := p.bonus.Trigger(spins, 0, totalBet); err != nil {
		return nil, err
	}
	p.stats.RecordSpin(price, 0)
	p.bonusBetPerLine = betPerLine
	p.logger.Info("bonus bought", zap.Float64("price", price), zap.Int("spins", spins))

	return &model.PlayResult{
		BetPerLine: betPerLine,
		TotalBet:   price,
		Triggered:  true,
		Bonus:      p.bonus.State(),
	}, nil
}

// PlayBonus Доиграть активный бонусный раунд с паузами пейсера
func (p *Player) PlayBonus(ctx context.Context, pacer *freespin.Pacer) (model.FreeSpinSummary, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return model.FreeSpinSummary{}, model.ErrSessionClosed
	}
	cycler := freespin.CyclerFunc(func(multiplier float64) (model.SpinResult, model.WinEvaluation) {
		var res model.PlayResult
		spin, ev := p.cycle(&res)(multiplier)
		if p.fair != nil {
			p.fair.Advance()
		}
		return spin, ev
	})
	return p.bonus.Play(ctx, cycler, pacer)
}

// Close Закрыть сессию. Незавершённый бонусный раунд учитывается в статистике ровно один раз
func (p *Player) Close() model.SessionClose {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return p.closeResult
	}
	p.closed = true

	var aborted *model.FreeSpinSummary
	if p.bonus.IsActive() {
		summary := p.bonus.Abort()
		aborted = &summary
		p.logger.Info("session closed during free spins",
			zap.Int("played", summary.TotalSpins),
			zap.Float64("win", summary.CumulativeWin),
		)
	}

	res := model.SessionClose{
		Stats:       p.stats.Snapshot(),
		Aborted:     aborted,
		RNGDegraded: p.rngDegraded(),
	}
	if p.fair != nil {
		res.ServerSeed = p.fair.Reveal()
		res.ServerSeedHash = p.fair.ServerSeedHash()
		res.ClientSeed = p.fair.ClientSeed()
		res.Nonce = p.fair.Nonce()
	}
	p.closeResult = res
	return res
}

// RNGDegraded Работала ли сессия хотя бы раз на резервном некриптографическом генераторе
func (p *Player) RNGDegraded() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.rngDegraded()
}

func (p *Player) rngDegraded() bool {
	d, ok := p.src.(rng.DegradedReporter)
	return ok && d.Degraded()
}

// SessionRTP RTP сессии в процентах
func (p *Player) SessionRTP() float64 { return p.stats.SessionRTP() }

// RollingRTP RTP по скользящему окну
func (p *Player) RollingRTP() float64 { return p.stats.RollingRTP() }

// HitFrequency Частота выигрышей
func (p *Player) HitFrequency() float64 { return p.stats.HitFrequency() }

// SessionStats Снимок статистики
func (p *Player) SessionStats() model.SessionStats { return p.stats.Snapshot() }

// FreeSpinState Состояние бонусного раунда
func (p *Player) FreeSpinState() model.FreeSpinState {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.bonus.State()
}

// ServerSeedHash Коммит серверного сида, пустой без доказуемо честного источника
func (p *Player) ServerSeedHash() string {
	if p.fair == nil {
		return ""
	}
	return p.fair.ServerSeedHash()
}

// ClientSeed Клиентский сид
func (p *Player) ClientSeed() string {
	if p.fair == nil {
		return ""
	}
	return p.fair.ClientSeed()
}

// Jackpots Текущие пулы джекпотов сессии
func (p *Player) Jackpots() []model.JackpotTier {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.eval.Jackpots()
}
