package repositories

// TagRepository abstracts access to the release tags of a local
// Git repository.
type TagRepository interface {
	// LatestTag returns the highest semantic-version tag of the repository
	// containing dir, or the empty string when the repository has no
	// semver-shaped tags at all.
	LatestTag(dir string) (string, error)
}
