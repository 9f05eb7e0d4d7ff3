package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"planpaineis_propostas/internal/app"
	"planpaineis_propostas/internal/infrastructure/config"
	"planpaineis_propostas/internal/printer"
	"planpaineis_propostas/pkg"
)

var rootCmd = &cobra.Command{
	Use:   "propctl",
	Short: "propctl - proposal document service tooling",
	Long: `propctl runs the local data migration, exports proposals to PDF or HTML
and applies the display masks used on proposals, using the same configuration
as the HTTP service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are printed by the printer package.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// buildApp is replaced in tests.
var buildApp = func(ctx context.Context, opts ...app.Option) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.Build(ctx, cfg, opts...)
}

func setupError(err error) error {
	var cfgErr *pkg.ConfigurationError
	if errors.As(err, &cfgErr) && len(cfgErr.Missing) > 0 {
		return printer.Error("Configuration error",
			"Missing required environment variables: "+strings.Join(cfgErr.Missing, ", "),
			"Export them in the shell", "Add them to a .env file in the working directory")
	}
	return printer.Error("Setup failed", err.Error())
}
