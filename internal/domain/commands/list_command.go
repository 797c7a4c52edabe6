package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, opts ListOptions) ([]entities.Package, error)
}

// ListOptions holds runtime options for a package listing.
type ListOptions struct {
	Dir string // Workspace directory
	All bool   // Include the full dependency graph, not only workspace members
}

// ListCommand collects the packages of a workspace from its metadata.
type ListCommand struct {
	metadata repositories.MetadataRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(metadata repositories.MetadataRepository) *ListCommand {
	return &ListCommand{metadata: metadata}
}

// Execute returns the workspace-member packages in the order cargo
// reports them, or every package of the graph when opts.All is set.
func (it *ListCommand) Execute(ctx context.Context, opts ListOptions) ([]entities.Package, error) {
	metadata, err := it.metadata.Load(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	if opts.All {
		logger.Debugf("listing full dependency graph: %d packages", len(metadata.Packages))
		return metadata.Packages, nil
	}

	pkgs := metadata.WorkspacePackages()
	logger.Debugf("listing %d workspace members of %d packages", len(pkgs), len(metadata.Packages))
	return pkgs, nil
}
