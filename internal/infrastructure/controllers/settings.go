package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cratekit/cratever/internal/domain/entities"
)

// loadSettings resolves the configuration for a command invocation.
// An explicit --config path that fails to load is an error; when no
// config file exists anywhere, built-in defaults are used.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("no config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// resolveTarget picks the target package name: CLI argument, then config
// file, then the built-in default.
func resolveTarget(args []string, settings *entities.Settings) string {
	if len(args) > 0 {
		return args[0]
	}
	if settings.Package != "" {
		return settings.Package
	}
	return entities.DefaultTargetPackage
}

// workspaceDir reads the persistent --path flag.
func workspaceDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("path")
	if dir == "" {
		dir = "."
	}
	return dir
}
