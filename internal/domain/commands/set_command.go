package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// Set is the interface for the set command.
type Set interface {
	Execute(ctx context.Context, opts SetOptions) (*SetResult, error)
}

// SetOptions holds runtime options for rewriting a manifest version.
type SetOptions struct {
	Dir     string // Workspace directory
	Package string // Target package name
	Version string // New version to write (without 'v' prefix)
}

// SetResult reports the version transition that was written.
type SetResult struct {
	Package      string
	ManifestPath string
	OldVersion   string
	NewVersion   string
}

// SetCommand rewrites the [package] version field of the target crate's
// Cargo.toml. The manifest is located through `cargo metadata` rather
// than by scanning the filesystem, so path layout quirks (nested
// workspace members, renamed directories) are handled by cargo itself.
type SetCommand struct {
	metadata repositories.MetadataRepository
}

// NewSetCommand creates a new SetCommand.
func NewSetCommand(metadata repositories.MetadataRepository) *SetCommand {
	return &SetCommand{metadata: metadata}
}

// Execute writes the new version into the target package's manifest.
func (it *SetCommand) Execute(ctx context.Context, opts SetOptions) (*SetResult, error) {
	if !semver.IsValid("v" + opts.Version) {
		return nil, fmt.Errorf("invalid version %q: must be a semantic version without 'v' prefix", opts.Version)
	}

	metadata, err := it.metadata.Load(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	pkg, found := metadata.FindPackage(opts.Package)
	if !found {
		return nil, fmt.Errorf("%w: %q", entities.ErrPackageNotFound, opts.Package)
	}

	if writeErr := writeManifestVersion(pkg.ManifestPath, opts.Version); writeErr != nil {
		return nil, writeErr
	}

	logger.Debugf("rewrote %s: %s -> %s", pkg.ManifestPath, pkg.Version, opts.Version)

	return &SetResult{
		Package:      pkg.Name,
		ManifestPath: pkg.ManifestPath,
		OldVersion:   pkg.Version,
		NewVersion:   opts.Version,
	}, nil
}

// writeManifestVersion updates the [package] version field of a Cargo.toml,
// leaving every other table untouched.
func writeManifestVersion(path, version string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat manifest %q: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var doc map[string]any
	if unmarshalErr := toml.Unmarshal(data, &doc); unmarshalErr != nil {
		return fmt.Errorf("failed to parse manifest %q: %w", path, unmarshalErr)
	}

	section, ok := doc["package"].(map[string]any)
	if !ok {
		return fmt.Errorf("manifest %q has no [package] table", path)
	}
	section["version"] = version

	updated, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest %q: %w", path, err)
	}

	if writeErr := os.WriteFile(path, updated, info.Mode().Perm()); writeErr != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, writeErr)
	}

	return nil
}
