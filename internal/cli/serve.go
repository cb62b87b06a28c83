package cli

import (
	"github.com/ehrlich-b/rubik-solver/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API",
	Long:  `Start the HTTP JSON API exposing /api/solve and /api/health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		cmd.Printf("starting server at http://%s:%s\n", host, port)

		s := server.NewServer()
		return s.Start(host + ":" + port)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "host to bind the server to")
}
