package repositories

import (
	"context"

	"github.com/cratekit/cratever/internal/domain/entities"
)

// MetadataRepository abstracts the source of Cargo workspace metadata.
// The production implementation shells out to `cargo metadata`; tests
// substitute an in-memory double.
type MetadataRepository interface {
	// Load produces the metadata document for the workspace rooted at dir.
	// The call blocks until the underlying command completes and its full
	// output has been captured.
	Load(ctx context.Context, dir string) (*entities.Metadata, error)
}
