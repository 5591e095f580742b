package simulator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"slot_engine/internal/model"
)

// RunMany Независимые прогоны с сидами seed, seed+1, ... параллельно
func RunMany(ctx context.Context, cfg *model.GameConfig, opts Options, runs int) (*ManyReport, error) {
	if runs <= 0 {
		runs = 1
	}
	reports := make([]*Report, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < runs; i++ {
		runOpts := opts
		runOpts.Seed = opts.Seed + uint64(i)
		g.Go(func() error {
			rep, err := Run(ctx, cfg, runOpts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ManyReport{
		Runs:    reports,
		MinRTP:  reports[0].MeasuredRTP,
		MaxRTP:  reports[0].MeasuredRTP,
		AllPass: true,
	}
	for _, r := range reports {
		out.MeanRTP += r.MeasuredRTP
		out.MinRTP = min(out.MinRTP, r.MeasuredRTP)
		out.MaxRTP = max(out.MaxRTP, r.MeasuredRTP)
		out.AllPass = out.AllPass && r.Pass
	}
	out.MeanRTP /= float64(runs)
	out.Spread = out.MaxRTP - out.MinRTP
	return out, nil
}
