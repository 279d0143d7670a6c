package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-palette/cmd"
	"github.com/mattsolo1/grove-palette/cmd/config"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

var svc *service.Service

func main() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd := &cobra.Command{
		Use:          "pal",
		Short:        "Search and browse the actions of a visual flow editor",
		SilenceUsage: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		if cmd.Name() == "version" {
			return nil
		}
		logger, err := config.NewLogger(viper.GetViper())
		if err != nil {
			return err
		}
		logger.WithField("config", viper.ConfigFileUsed()).Debug("Configuration loaded")

		svc, err = config.InitService(logger)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewSectionsCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewPremiumCmd(&svc))
	rootCmd.AddCommand(cmd.NewAppsCmd(&svc))
	rootCmd.AddCommand(cmd.NewTemplatesCmd(&svc))
	rootCmd.AddCommand(cmd.NewTuiCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
