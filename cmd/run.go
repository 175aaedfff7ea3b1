package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/app"
	"github.com/abhisek/resiliq/internal/logging"
)

// runApp builds the service client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	client, err := buildClient(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	return app.Run(client)
}

// buildClient resolves configuration (flag over environment), initializes
// logging, and returns the wrapped service client.
func buildClient(cmd *cobra.Command) (api.Client, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	if err := logging.Init(debug); err != nil {
		fmt.Fprintln(os.Stderr, "Logging unavailable:", err)
	}

	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return api.WithLogging(api.NewHTTPClient(cfg), logging.L()), nil
}
