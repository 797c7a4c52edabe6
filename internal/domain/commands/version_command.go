package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, opts VersionOptions) (string, error)
}

// VersionOptions holds runtime options for a version lookup.
type VersionOptions struct {
	Dir     string // Workspace directory
	Package string // Target package name
}

// VersionCommand resolves the version of a single named package from
// the workspace metadata.
type VersionCommand struct {
	metadata repositories.MetadataRepository
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(metadata repositories.MetadataRepository) *VersionCommand {
	return &VersionCommand{metadata: metadata}
}

// Execute loads the workspace metadata and returns the version of the
// first package whose name equals opts.Package.
func (it *VersionCommand) Execute(ctx context.Context, opts VersionOptions) (string, error) {
	metadata, err := it.metadata.Load(ctx, opts.Dir)
	if err != nil {
		return "", err
	}

	pkg, found := metadata.FindPackage(opts.Package)
	if !found {
		return "", fmt.Errorf("%w: %q", entities.ErrPackageNotFound, opts.Package)
	}

	logger.Debugf("resolved %s to version %s (%s)", pkg.Name, pkg.Version, pkg.ManifestPath)
	return pkg.Version, nil
}
