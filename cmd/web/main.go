package main

import (
	"fmt"
	"os"

	"github.com/de-tools/growth-atlas/pkg/server"
	"github.com/de-tools/growth-atlas/pkg/services/calculator"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the local web calculator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a settings file with bounds and default parameters")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	serverCfg, err := config.LoadServer(".env")
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if cfgPath != "" {
		logger.Info().Msgf("Settings found at `%s` successfully loaded.", cfgPath)
	}

	calc := calculator.NewService(settings.Parameters(), settings.BoundsSet())
	if _, _, err := calc.Evaluate(logger.WithContext(cmd.Context()), nil); err != nil {
		return fmt.Errorf("invalid default parameters: %w", err)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            serverCfg.Addr(),
		ShutdownTimeout: serverCfg.ShutdownTimeout,
		RateLimit:       serverCfg.RateLimit,
		RateWindow:      serverCfg.RateWindow,
		Dependencies: server.Dependencies{
			Calculator: calc,
			Logger:     logger,
		},
	})

	return api.Start()
}
