package commands //nolint:testpackage // tests use package-internal option types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratekit/cratever/internal/domain/entities"
	testdoubles "github.com/cratekit/cratever/test"
	"github.com/cratekit/cratever/test/domain/entitybuilders"
)

func TestVersionCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should return the version of the target package", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &testdoubles.StubMetadataRepository{
			Metadata: &entities.Metadata{
				Packages: []entities.Package{
					entitybuilders.NewPackageBuilder().WithName("glyphs-plist").WithVersion("0.2.0").BuildPackage(),
					entitybuilders.NewPackageBuilder().WithName("glyphs-exchange").WithVersion("1.2.3").BuildPackage(),
				},
			},
		}
		command := NewVersionCommand(repo)

		// when
		version, err := command.Execute(context.Background(), VersionOptions{
			Dir:     ".",
			Package: "glyphs-exchange",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", version)
		assert.Equal(t, []string{"."}, repo.LoadedDirs)
	})

	t.Run("should return the first match when several packages share a name", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &testdoubles.StubMetadataRepository{
			Metadata: &entities.Metadata{
				Packages: []entities.Package{
					entitybuilders.NewPackageBuilder().WithName("serde").WithVersion("1.0.200").BuildPackage(),
					entitybuilders.NewPackageBuilder().WithName("serde").WithVersion("0.9.15").BuildPackage(),
				},
			},
		}
		command := NewVersionCommand(repo)

		// when
		version, err := command.Execute(context.Background(), VersionOptions{
			Dir:     ".",
			Package: "serde",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.0.200", version)
	})

	t.Run("should fail with ErrPackageNotFound when the target is absent", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &testdoubles.StubMetadataRepository{
			Metadata: &entities.Metadata{
				Packages: []entities.Package{
					entitybuilders.NewPackageBuilder().WithName("glyphs-plist").BuildPackage(),
				},
			},
		}
		command := NewVersionCommand(repo)

		// when
		version, err := command.Execute(context.Background(), VersionOptions{
			Dir:     ".",
			Package: "glyphs-exchange",
		})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPackageNotFound)
		assert.Contains(t, err.Error(), "glyphs-exchange")
		assert.Empty(t, version)
	})

	t.Run("should propagate repository errors without a version", func(t *testing.T) {
		t.Parallel()

		// given
		loadErr := errors.New("boom")
		repo := &testdoubles.StubMetadataRepository{Err: loadErr}
		command := NewVersionCommand(repo)

		// when
		version, err := command.Execute(context.Background(), VersionOptions{
			Dir:     ".",
			Package: "glyphs-exchange",
		})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, loadErr)
		assert.Empty(t, version)
	})
}
