package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/cratekit/cratever/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageBuilder helps create test packages with a fluent interface.
type PackageBuilder struct {
	*testkit.BaseBuilder
	id           string
	name         string
	version      string
	description  string
	manifestPath string
}

// NewPackageBuilder creates a new package builder with sensible defaults.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		id:           "test-crate 0.1.0 (path+file:///workspace/test-crate)",
		name:         "test-crate",
		version:      "0.1.0",
		description:  "A test crate",
		manifestPath: "/workspace/test-crate/Cargo.toml",
	}
}

// WithID sets the package ID.
func (b *PackageBuilder) WithID(id string) *PackageBuilder {
	b.id = id
	return b
}

// WithName sets the package name.
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	return b
}

// WithVersion sets the package version.
func (b *PackageBuilder) WithVersion(version string) *PackageBuilder {
	b.version = version
	return b
}

// WithDescription sets the package description.
func (b *PackageBuilder) WithDescription(description string) *PackageBuilder {
	b.description = description
	return b
}

// WithManifestPath sets the manifest path.
func (b *PackageBuilder) WithManifestPath(path string) *PackageBuilder {
	b.manifestPath = path
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *PackageBuilder) Build() interface{} {
	return b.BuildPackage()
}

// BuildPackage creates the package with a concrete return type.
func (b *PackageBuilder) BuildPackage() entities.Package {
	return entities.Package{
		ID:           b.id,
		Name:         b.name,
		Version:      b.version,
		Description:  b.description,
		ManifestPath: b.manifestPath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "test-crate 0.1.0 (path+file:///workspace/test-crate)"
	b.name = "test-crate"
	b.version = "0.1.0"
	b.description = "A test crate"
	b.manifestPath = "/workspace/test-crate/Cargo.toml"
	return b
}

// Clone creates a deep copy of the PackageBuilder.
func (b *PackageBuilder) Clone() testkit.Builder {
	return &PackageBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:           b.id,
		name:         b.name,
		version:      b.version,
		description:  b.description,
		manifestPath: b.manifestPath,
	}
}
