package main

import (
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"em_casing/internal/server"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve casing solves over a websocket",
	Long: `Listens on --addr and answers "solve" messages on /ws. Only the [run] workers
setting of the configuration is used; every request carries its own casing
and wire.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, "")
		if err != nil {
			return err
		}
		s := server.NewServer(addr, websocket.Upgrader{}, cfg.Run.Workers)
		return s.Serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
