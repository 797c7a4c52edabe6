package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cratekit/cratever/internal/domain/commands"
	"github.com/cratekit/cratever/internal/domain/entities"
)

// VersionController handles the version command: print the version of
// one named package and nothing else. On any failure nothing is written
// to stdout and the process exits non-zero.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version [package]",
		Short: "Print the version of a package from cargo metadata",
		Long: `Print the version of a single package as reported by
'cargo metadata --format-version 1'.

The target package is the positional argument if given, otherwise the
'package' key of the config file, otherwise the built-in default.
Exactly one line (the version string) is written to standard output.`,
	}
}

// Execute runs the version lookup.
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) > 1 {
		return fmt.Errorf("expected at most one package name, got %d arguments", len(args))
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	version, err := it.command.Execute(ctx, commands.VersionOptions{
		Dir:     workspaceDir(cmd),
		Package: resolveTarget(args, settings),
	})
	if err != nil {
		return err
	}

	fmt.Println(version)
	return nil
}
