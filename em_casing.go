package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"em_casing/internal/casing"
	"em_casing/internal/config"
	"em_casing/internal/report"
)

var (
	// Global flags
	verbose    bool
	configPath string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "em_casing",
	Short: "Casing currents induced by a grounded wire over a conducting halfspace",
	Long: `Solves for the axial current in a vertical steel well casing energized by a
grounded surface wire, and evaluates the resulting electric field.

Examples:
  em_casing solve -c run.ini                 # casing currents to casing_current.csv
  em_casing fields -c run.yaml --receivers rx.csv
  em_casing serve --addr :8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "run configuration (.ini, .yaml); built-in defaults when empty")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output folder, overrides [run] output_dir")
}

/*
loadConfig reads the configuration file and applies flag overrides

	Args:
		path: .ini or .yaml file, or empty for the built-in defaults
		out: output folder, or empty to keep the configured one
*/
func loadConfig(path, out string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if out != "" {
		cfg.Run.OutputDir = out
	}
	return cfg, nil
}

func newModel(cfg *config.Config) (*casing.Model, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	method, err := cfg.Method()
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}
	eng, err := cfg.Engine(p.Halfspace())
	if err != nil {
		return nil, err
	}
	path, err := cfg.WirePath()
	if err != nil {
		return nil, err
	}
	return &casing.Model{
		Params:   p,
		Path:     path,
		Method:   method,
		Strategy: strategy,
		Workers:  cfg.Run.Workers,
		Symmetry: cfg.Run.Symmetry,
		Engine:   eng,
	}, nil
}

/*
run solves the casing currents and saves them

	Args:
		ctx: cancels the matrix assembly
		cfg: run configuration

	Returns:
		the model and its solution
*/
func run(ctx context.Context, cfg *config.Config) (*casing.Model, *casing.Solution, error) {
	m, err := newModel(cfg)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	sol, err := m.Solve(ctx)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("elapsed_time: %v", time.Since(start))

	rec := report.NewRecorder(cfg.Run.OutputDir, cfg.Run.Plot)
	if err := rec.RecordSolution(sol); err != nil {
		return nil, nil, err
	}
	if err := rec.RecordWire(m.Path.Compact()); err != nil {
		return nil, nil, err
	}
	return m, sol, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
