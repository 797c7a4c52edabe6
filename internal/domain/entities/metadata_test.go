package entities //nolint:testpackage // tests live next to the model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FindPackage(t *testing.T) {
	t.Parallel()

	metadata := &Metadata{
		Packages: []Package{
			{ID: "a 1.0.0", Name: "a", Version: "1.0.0"},
			{ID: "b 2.0.0", Name: "b", Version: "2.0.0"},
			{ID: "b 0.1.0", Name: "b", Version: "0.1.0"},
		},
	}

	t.Run("should find a package by exact name", func(t *testing.T) {
		t.Parallel()

		// when
		pkg, found := metadata.FindPackage("a")

		// then
		require.True(t, found)
		assert.Equal(t, "1.0.0", pkg.Version)
	})

	t.Run("should return the first of several matches", func(t *testing.T) {
		t.Parallel()

		// when
		pkg, found := metadata.FindPackage("b")

		// then
		require.True(t, found)
		assert.Equal(t, "2.0.0", pkg.Version)
	})

	t.Run("should report a missing package", func(t *testing.T) {
		t.Parallel()

		// when
		pkg, found := metadata.FindPackage("c")

		// then
		assert.False(t, found)
		assert.Empty(t, pkg.Name)
	})

	t.Run("should not match on prefixes", func(t *testing.T) {
		t.Parallel()

		// when
		_, found := metadata.FindPackage("")

		// then
		assert.False(t, found)
	})
}

func TestMetadata_WorkspacePackages(t *testing.T) {
	t.Parallel()

	t.Run("should filter to workspace members preserving order", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := &Metadata{
			Packages: []Package{
				{ID: "dep 1.0.0", Name: "dep"},
				{ID: "member-b 0.1.0", Name: "member-b"},
				{ID: "member-a 0.1.0", Name: "member-a"},
			},
			WorkspaceMembers: []string{"member-a 0.1.0", "member-b 0.1.0"},
		}

		// when
		pkgs := metadata.WorkspacePackages()

		// then
		require.Len(t, pkgs, 2)
		assert.Equal(t, "member-b", pkgs[0].Name)
		assert.Equal(t, "member-a", pkgs[1].Name)
	})

	t.Run("should return nothing when there are no members", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := &Metadata{Packages: []Package{{ID: "dep 1.0.0", Name: "dep"}}}

		// when
		pkgs := metadata.WorkspacePackages()

		// then
		assert.Empty(t, pkgs)
	})
}
