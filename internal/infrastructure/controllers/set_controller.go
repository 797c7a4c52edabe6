package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cratekit/cratever/internal/domain/commands"
	"github.com/cratekit/cratever/internal/domain/entities"
)

// SetController handles the set command.
type SetController struct {
	command commands.Set
}

// NewSetController creates a new SetController.
func NewSetController(command commands.Set) *SetController {
	return &SetController{command: command}
}

// GetBind returns the Cobra command metadata for the set controller.
func (it *SetController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "set <version> [package]",
		Short: "Write a new version into the package manifest",
		Long: `Rewrite the [package] version field of the target crate's
Cargo.toml. The manifest is located through 'cargo metadata', so the
command works from anywhere inside the workspace.`,
	}
}

// Execute rewrites the manifest version.
func (it *SetController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("expected <version> and optional [package], got %d arguments", len(args))
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, commands.SetOptions{
		Dir:     workspaceDir(cmd),
		Package: resolveTarget(args[1:], settings),
		Version: args[0],
	})
	if err != nil {
		return err
	}

	logger.Infof("%s: %s -> %s (%s)",
		result.Package, result.OldVersion, result.NewVersion, result.ManifestPath)
	return nil
}
