package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"em_casing/internal/config"
	"em_casing/internal/engine"
	"em_casing/internal/report"
)

var errNoReceivers = errors.New("no receiver file: set --receivers or [run] receivers")

var (
	receiversPath string
	component     string
	engineName    string
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Electric field of the wire and the casing at receivers",
	Long: `Solves the casing currents, then evaluates the wire's primary field and the
casing's secondary field at every receiver of an x,y,z CSV file (z positive
down). Writes fields.csv with the total, wire and casing parts. The hankel
engine evaluates the same responses by digital filtering and needs receivers
below the surface and off the casing axis.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, outputDir)
		if err != nil {
			return err
		}
		if engineName != "" {
			cfg.Run.Engine = engineName
		}
		return runFields(cmd.Context(), cfg, receiversPath, engine.Component(component))
	},
}

func init() {
	fieldsCmd.Flags().StringVar(&receiversPath, "receivers", "", "receiver CSV, overrides [run] receivers")
	fieldsCmd.Flags().StringVar(&component, "component", string(engine.ComponentEz), "field component")
	fieldsCmd.Flags().StringVar(&engineName, "engine", "", "field engine (analytic, hankel), overrides [run] engine")
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(ctx context.Context, cfg *config.Config, receivers string, c engine.Component) error {
	if receivers == "" {
		receivers = cfg.Resolve(cfg.Run.Receivers)
	}
	if receivers == "" {
		return errNoReceivers
	}
	rx, err := report.LoadReceivers(receivers)
	if err != nil {
		return err
	}

	m, sol, err := run(ctx, cfg)
	if err != nil {
		return err
	}
	f, err := m.Fields(ctx, sol, rx, c)
	if err != nil {
		return err
	}
	return report.NewRecorder(cfg.Run.OutputDir, false).RecordFields(f)
}
