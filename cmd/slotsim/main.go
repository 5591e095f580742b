package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/rng"
	"slot_engine/internal/service/reel"
	"slot_engine/internal/service/simulator"
	"slot_engine/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "slotsim",
		Short:         "Slot math tooling: Monte Carlo simulation, exact RTP, reel strip synthesis",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringP("config", "c", "", "Game config file (YAML or JSON, required)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")
	_ = root.MarkPersistentFlagRequired("config")

	root.AddCommand(newSimulateCmd(&logLevel), newExactCmd(), newStripsCmd())
	return root
}

func newSimulateCmd(logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run seeded Monte Carlo simulation and compare RTP with target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logger.New("dev", *logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			spins, _ := cmd.Flags().GetInt("spins")
			seed, _ := cmd.Flags().GetUint64("seed")
			runs, _ := cmd.Flags().GetInt("runs")
			bet, _ := cmd.Flags().GetFloat64("bet")
			target, _ := cmd.Flags().GetFloat64("target")
			tolerance, _ := cmd.Flags().GetFloat64("tolerance")

			opts := simulator.Options{
				Spins:      spins,
				Seed:       seed,
				BetPerLine: bet,
				TargetRTP:  target,
				Tolerance:  tolerance,
				Logger:     log,
			}
			if runs <= 1 {
				rep, err := simulator.Run(cmd.Context(), cfg, opts)
				if err != nil {
					return err
				}
				printLines(cmd, rep.Lines())
				if !rep.Pass {
					return fmt.Errorf("rtp %.4f outside target %.4f ± %.4f", rep.MeasuredRTP, rep.TargetRTP, rep.Tolerance)
				}
				return nil
			}

			many, err := simulator.RunMany(cmd.Context(), cfg, opts, runs)
			if err != nil {
				return err
			}
			printLines(cmd, many.Lines())
			log.Info("simulation runs finished", zap.Int("runs", runs), zap.Bool("pass", many.AllPass))
			if !many.AllPass {
				return fmt.Errorf("%d runs, not all within tolerance", runs)
			}
			return nil
		},
	}
	cmd.Flags().IntP("spins", "n", simulator.DefaultSpins, "Paid spins per run")
	cmd.Flags().Uint64P("seed", "s", 42, "Base seed")
	cmd.Flags().IntP("runs", "r", 1, "Independent runs with seeds seed, seed+1, ...")
	cmd.Flags().Float64("bet", 0, "Bet per line (default: game default bet)")
	cmd.Flags().Float64("target", 0, "Target RTP as a fraction or percent (default: game targetRTP)")
	cmd.Flags().Float64P("tolerance", "t", simulator.DefaultTolerance, "Allowed RTP deviation")
	return cmd
}

func newExactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exact",
		Short: "Enumerate all stop combinations of the base game",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			exact, err := simulator.ExactRTP(cfg)
			if err != nil {
				return err
			}
			printLines(cmd, []string{
				fmt.Sprintf("Combinations: %d", exact.Combinations),
				fmt.Sprintf("Base RTP:     %.6f", exact.RTP),
				fmt.Sprintf("Hit freq:     %.6f", exact.HitFrequency),
				fmt.Sprintf("Trigger rate: %.6f", exact.TriggerRate),
			})
			return nil
		},
	}
}

func newStripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strips",
		Short: "Synthesise reel strips from symbol weights and print them as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.DecodeGameFile(path)
			if err != nil {
				return err
			}
			length, _ := cmd.Flags().GetInt("length")
			seed, _ := cmd.Flags().GetUint64("seed")

			strips, err := reel.BuildStrips(cfg.SymbolWeights, cfg.ReelsCount, length, rng.NewSeeded(seed))
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(map[string]any{"reelStrips": strips})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntP("length", "l", reel.DefaultStripLength, "Strip length")
	cmd.Flags().Uint64P("seed", "s", 1, "Seed")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*model.GameConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.LoadGameFile(path)
}

func printLines(cmd *cobra.Command, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), l)
	}
}
