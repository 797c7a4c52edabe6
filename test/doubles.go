// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// StubMetadataRepository
// ---------------------------------------------------------------------------

// StubMetadataRepository implements repositories.MetadataRepository as a
// configurable stub with spy fields. Configure Metadata or Err, then
// inspect LoadedDirs to verify the directories that were requested.
type StubMetadataRepository struct {
	Metadata *entities.Metadata
	Err      error

	// spy: dirs that were requested
	LoadedDirs []string
}

var _ repositories.MetadataRepository = (*StubMetadataRepository)(nil)

func (s *StubMetadataRepository) Load(_ context.Context, dir string) (*entities.Metadata, error) {
	s.LoadedDirs = append(s.LoadedDirs, dir)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Metadata, nil
}

// ---------------------------------------------------------------------------
// StubTagRepository
// ---------------------------------------------------------------------------

// StubTagRepository implements repositories.TagRepository as a configurable stub.
type StubTagRepository struct {
	Tag string
	Err error

	// spy: dirs that were requested
	RequestedDirs []string
}

var _ repositories.TagRepository = (*StubTagRepository)(nil)

func (s *StubTagRepository) LatestTag(dir string) (string, error) {
	s.RequestedDirs = append(s.RequestedDirs, dir)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Tag, nil
}
