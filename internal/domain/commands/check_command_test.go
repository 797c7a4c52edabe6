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

func metadataWithVersion(version string) *entities.Metadata {
	return &entities.Metadata{
		Packages: []entities.Package{
			entitybuilders.NewPackageBuilder().
				WithName("glyphs-exchange").
				WithVersion(version).
				BuildPackage(),
		},
	}
}

func TestCheckCommand_Execute(t *testing.T) {
	t.Parallel()

	checkOpts := CheckOptions{Dir: ".", Package: "glyphs-exchange"}

	t.Run("should report ready when the manifest is ahead of the latest tag", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("1.3.0")},
			&testdoubles.StubTagRepository{Tag: "v1.2.3"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusReady, result.Status)
		assert.Equal(t, "1.3.0", result.ManifestVersion)
		assert.Equal(t, "v1.2.3", result.LatestTag)
	})

	t.Run("should report released when the manifest equals the latest tag", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("1.2.3")},
			&testdoubles.StubTagRepository{Tag: "v1.2.3"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusReleased, result.Status)
	})

	t.Run("should report behind when the manifest was never bumped", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("1.2.3")},
			&testdoubles.StubTagRepository{Tag: "v1.4.0"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusBehind, result.Status)
	})

	t.Run("should report first release when the repository has no tags", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("0.1.0")},
			&testdoubles.StubTagRepository{Tag: ""},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusFirstRelease, result.Status)
		assert.Empty(t, result.LatestTag)
	})

	t.Run("should compare tags without a v prefix", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("1.2.3")},
			&testdoubles.StubTagRepository{Tag: "1.2.3"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusReleased, result.Status)
	})

	t.Run("should fail when the manifest version is not semver", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("not-a-version")},
			&testdoubles.StubTagRepository{Tag: "v1.0.0"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-version")
		assert.Nil(t, result)
	})

	t.Run("should fail with ErrPackageNotFound when the target is absent", func(t *testing.T) {
		t.Parallel()

		// given
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: &entities.Metadata{Packages: []entities.Package{}}},
			&testdoubles.StubTagRepository{Tag: "v1.0.0"},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPackageNotFound)
		assert.Nil(t, result)
	})

	t.Run("should wrap tag repository errors", func(t *testing.T) {
		t.Parallel()

		// given
		tagErr := errors.New("not a git repository")
		command := NewCheckCommand(
			&testdoubles.StubMetadataRepository{Metadata: metadataWithVersion("1.0.0")},
			&testdoubles.StubTagRepository{Err: tagErr},
		)

		// when
		result, err := command.Execute(context.Background(), checkOpts)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, tagErr)
		assert.Nil(t, result)
	})
}
