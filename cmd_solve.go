package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the casing currents",
	Long: `Assembles and solves the casing system for the configured wire and writes
one row per segment (depth, current density, current, moment) to
casing_current.csv in the output folder. With [run] plot = true the |j|
profile is drawn to casing_current.png as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, outputDir)
		if err != nil {
			return err
		}
		_, sol, err := run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		log.WithField("segments", len(sol.Depths)).Info("done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
