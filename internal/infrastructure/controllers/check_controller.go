package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cratekit/cratever/internal/domain/commands"
	"github.com/cratekit/cratever/internal/domain/entities"
)

// CheckController handles the check command (pre-release gate).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [package]",
		Short: "Check the manifest version against the latest git tag",
		Long: `Compare the target package's manifest version with the newest
semver tag of the local git repository.

The check fails when the manifest version is behind the latest tag,
meaning the version was never bumped after the last release.`,
	}
}

// Execute runs the release check.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) > 1 {
		return fmt.Errorf("expected at most one package name, got %d arguments", len(args))
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, commands.CheckOptions{
		Dir:     workspaceDir(cmd),
		Package: resolveTarget(args, settings),
	})
	if err != nil {
		return err
	}

	switch result.Status {
	case commands.StatusReady:
		logger.Infof("%s %s is ready to release (latest tag: %s)",
			result.Package, result.ManifestVersion, result.LatestTag)
	case commands.StatusReleased:
		logger.Infof("%s %s is already released as %s",
			result.Package, result.ManifestVersion, result.LatestTag)
	case commands.StatusFirstRelease:
		logger.Infof("%s %s has no prior release tags", result.Package, result.ManifestVersion)
	case commands.StatusBehind:
		return fmt.Errorf("%s %s is behind the latest tag %s: bump the manifest version before tagging",
			result.Package, result.ManifestVersion, result.LatestTag)
	}

	return nil
}
