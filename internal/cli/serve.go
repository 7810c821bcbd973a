package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the public directory for local preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.ServeSettings.Port
		if servePort != "" {
			port = servePort
		}
		dir := cfg.OutputSettings.PublicDir
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("nothing to serve: %w", err)
		}

		fmt.Printf("Serving %s on http://localhost:%s (Ctrl-C to stop)\n", dir, port)
		return http.ListenAndServe(":"+port, http.FileServer(http.Dir(dir)))
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on")
}
