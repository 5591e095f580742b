package simulator

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"slot_engine/internal/model"
	"slot_engine/internal/repository/stats_repo"
	"slot_engine/internal/rng"
	"slot_engine/internal/service/player"
)

const (
	// DefaultSpins Число платных спинов по умолчанию
	DefaultSpins = 1_000_000
	// DefaultTolerance Допустимое отклонение RTP от целевого
	DefaultTolerance = 0.005

	uniformityBuckets = 100
	uniformitySamples = 100_000
)

// Options Параметры прогона
type Options struct {
	Spins      int
	Seed       uint64
	BetPerLine float64
	TargetRTP  float64
	Tolerance  float64
	Logger     *zap.Logger
}

func (o Options) withDefaults(cfg *model.GameConfig) Options {
	if o.Spins <= 0 {
		o.Spins = DefaultSpins
	}
	if o.BetPerLine <= 0 {
		o.BetPerLine = cfg.BetConfig.DefaultBet
	}
	if o.BetPerLine <= 0 {
		o.BetPerLine = 1
	}
	if o.TargetRTP <= 0 {
		o.TargetRTP = cfg.TargetRTP
	}
	o.TargetRTP = model.RTPFraction(o.TargetRTP)
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// anyPositiveBet В симуляции ставка не обязана входить в список ставок игры
var anyPositiveBet = player.BetValidatorFunc(func(_ *model.GameConfig, betPerLine float64) error {
	if betPerLine <= 0 {
		return fmt.Errorf("%w: bet must be positive", model.ErrBetRejected)
	}
	return nil
})

// Run Прогон платных спинов с сидом. Выигрыш бонусного раунда засчитывается спину, который его запустил
func Run(ctx context.Context, cfg *model.GameConfig, opts Options) (*Report, error) {
	opts = opts.withDefaults(cfg)
	started := time.Now()

	src := rng.NewSeeded(opts.Seed)
	tracker := stats_repo.NewTracker(0)
	p, err := player.New(cfg, player.Options{
		Source:    src,
		Stats:     tracker,
		Validator: anyPositiveBet,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	defer p.Close()

	totalBet := cfg.TotalBet(opts.BetPerLine)
	outcomes := make([]float64, opts.Spins)
	var triggers, freeSpins int

	for i := range outcomes {
		res, err := p.Spin(ctx, opts.BetPerLine)
		if err != nil {
			return nil, err
		}
		round := res.Payout
		if res.Triggered {
			triggers++
			for bonus := res.Bonus; bonus.Active; {
				fs, err := p.Spin(ctx, opts.BetPerLine)
				if err != nil {
					return nil, err
				}
				round += fs.Payout
				freeSpins++
				bonus = fs.Bonus
			}
		}
		outcomes[i] = round / totalBet
	}

	snap := tracker.Snapshot()
	rtp := 0.0
	if snap.TotalBet > 0 {
		rtp = snap.TotalWin / snap.TotalBet
	}

	rep := &Report{
		GameID:       cfg.ID,
		Spins:        opts.Spins,
		Seed:         opts.Seed,
		BetPerLine:   opts.BetPerLine,
		TargetRTP:    opts.TargetRTP,
		MeasuredRTP:  rtp,
		Delta:        math.Abs(rtp - opts.TargetRTP),
		Tolerance:    opts.Tolerance,
		HitFrequency: snap.HitFrequency / 100,
		StdDev:       stdDev(outcomes),
		MaxWin:       maxOf(outcomes),
		MedianWin:    medianWin(outcomes),
		Distribution: distribution(outcomes),
		Streaks:      streaks(outcomes),
		Triggers:     triggers,
		FreeSpins:    freeSpins,
		TriggerRate:  float64(triggers) / float64(opts.Spins),
		ChiSquare:    rng.Uniformity(rng.NewSeeded(opts.Seed+999), uniformityBuckets, uniformitySamples),
		Duration:     time.Since(started),
	}
	rep.Pass = rep.Delta <= rep.Tolerance

	opts.Logger.Debug("simulation finished",
		zap.String("game", cfg.ID),
		zap.Uint64("seed", opts.Seed),
		zap.Float64("rtp", rtp),
		zap.Duration("took", rep.Duration),
	)
	return rep, nil
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func maxOf(xs []float64) float64 {
	out := 0.0
	for _, x := range xs {
		out = max(out, x)
	}
	return out
}

// medianWin Медиана только по выигрышным спинам
func medianWin(xs []float64) float64 {
	wins := make([]float64, 0, len(xs)/4)
	for _, x := range xs {
		if x > 0 {
			wins = append(wins, x)
		}
	}
	if len(wins) == 0 {
		return 0
	}
	sort.Float64s(wins)
	mid := len(wins) / 2
	if len(wins)%2 == 1 {
		return wins[mid]
	}
	return (wins[mid-1] + wins[mid]) / 2
}

// Границы корзин распределения в кратностях ставки
var bucketBounds = []struct {
	label string
	upper float64
}{
	{"0-1x", 1},
	{"1-2x", 2},
	{"2-5x", 5},
	{"5-10x", 10},
	{"10-50x", 50},
	{"50-100x", 100},
	{"100x+", math.Inf(1)},
}

func distribution(xs []float64) []Bucket {
	out := make([]Bucket, 0, len(bucketBounds)+1)
	out = append(out, Bucket{Label: "0x"})
	for _, b := range bucketBounds {
		out = append(out, Bucket{Label: b.label})
	}
	for _, x := range xs {
		if x == 0 {
			out[0].Count++
			continue
		}
		for i, b := range bucketBounds {
			if x < b.upper {
				out[i+1].Count++
				break
			}
		}
	}
	for i := range out {
		out[i].Percent = float64(out[i].Count) / float64(len(xs)) * 100
	}
	return out
}

func streaks(xs []float64) Streaks {
	var s Streaks
	var curWin, curLoss int
	for _, x := range xs {
		if x > 0 {
			s.TotalWins++
			curWin++
			curLoss = 0
			s.MaxWinStreak = max(s.MaxWinStreak, curWin)
			continue
		}
		curLoss++
		curWin = 0
		s.MaxLossStreak = max(s.MaxLossStreak, curLoss)
	}
	s.TotalLosses = len(xs) - s.TotalWins
	return s
}
