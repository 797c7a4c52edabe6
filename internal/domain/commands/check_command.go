package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// CheckStatus classifies the manifest version against the latest release tag.
type CheckStatus string

const (
	// StatusReady means the manifest version is ahead of the latest tag.
	StatusReady CheckStatus = "ready"
	// StatusReleased means the manifest version equals the latest tag.
	StatusReleased CheckStatus = "released"
	// StatusBehind means the manifest version is older than the latest tag.
	StatusBehind CheckStatus = "behind"
	// StatusFirstRelease means the repository carries no semver tags yet.
	StatusFirstRelease CheckStatus = "first-release"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) (*CheckResult, error)
}

// CheckOptions holds runtime options for a release check.
type CheckOptions struct {
	Dir     string // Workspace directory
	Package string // Target package name
}

// CheckResult describes the outcome of a release check.
type CheckResult struct {
	Package         string
	ManifestVersion string
	LatestTag       string
	Status          CheckStatus
}

// CheckCommand compares the manifest version of the target package
// against the newest semver tag of the local repository. It is the
// pre-tag release gate: a tag should only be cut once the manifest
// version has been bumped past the last one.
type CheckCommand struct {
	metadata repositories.MetadataRepository
	tags     repositories.TagRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	metadata repositories.MetadataRepository,
	tags repositories.TagRepository,
) *CheckCommand {
	return &CheckCommand{metadata: metadata, tags: tags}
}

// Execute runs the release check for the target package.
func (it *CheckCommand) Execute(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	metadata, err := it.metadata.Load(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	pkg, found := metadata.FindPackage(opts.Package)
	if !found {
		return nil, fmt.Errorf("%w: %q", entities.ErrPackageNotFound, opts.Package)
	}

	manifestVer := normalizeVersion(pkg.Version)
	if !semver.IsValid(manifestVer) {
		return nil, fmt.Errorf("manifest version %q of %s is not a semantic version", pkg.Version, pkg.Name)
	}

	latestTag, err := it.tags.LatestTag(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository tags: %w", err)
	}

	result := &CheckResult{
		Package:         pkg.Name,
		ManifestVersion: pkg.Version,
		LatestTag:       latestTag,
	}

	if latestTag == "" {
		result.Status = StatusFirstRelease
		return result, nil
	}

	logger.Debugf("comparing manifest %s against tag %s", pkg.Version, latestTag)

	switch semver.Compare(manifestVer, normalizeVersion(latestTag)) {
	case 1:
		result.Status = StatusReady
	case 0:
		result.Status = StatusReleased
	default:
		result.Status = StatusBehind
	}

	return result, nil
}

// normalizeVersion ensures the version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
