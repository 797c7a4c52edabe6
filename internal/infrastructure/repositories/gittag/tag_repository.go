package gittag

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/cratekit/cratever/internal/domain/repositories"
)

// TagRepository reads release tags from the local Git repository.
// It never touches the network: tags are enumerated from the on-disk
// repository state.
type TagRepository struct{}

// NewTagRepository creates a new TagRepository.
func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

// Verify TagRepository implements repositories.TagRepository.
var _ repositories.TagRepository = (*TagRepository)(nil)

// LatestTag returns the highest semver tag of the repository containing
// dir, in its original spelling (with or without 'v' prefix). Tags that
// do not look like semantic versions are ignored. Returns the empty
// string when no semver tag exists.
func (r *TagRepository) LatestTag(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	var latest string
	iterErr := tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		normalized := normalizeTag(name)
		if !semver.IsValid(normalized) {
			logger.Debugf("skipping non-semver tag %q", name)
			return nil
		}
		if latest == "" || semver.Compare(normalized, normalizeTag(latest)) > 0 {
			latest = name
		}
		return nil
	})
	if iterErr != nil {
		return "", fmt.Errorf("failed to iterate tags: %w", iterErr)
	}

	return latest, nil
}

// normalizeTag ensures the tag has a 'v' prefix for semver comparison.
func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
