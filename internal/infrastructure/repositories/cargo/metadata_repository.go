package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/domain/repositories"
)

// metadataFormatVersion pins the schema this tool understands.
const metadataFormatVersion = "1"

// MetadataRepository loads workspace metadata by shelling out to
// `cargo metadata --format-version 1`. The invocation is blocking and
// its full stdout is captured before any decoding happens.
type MetadataRepository struct {
	execCommand func(ctx context.Context, dir string) ([]byte, error)
}

// NewMetadataRepository creates a repository backed by the real cargo binary.
func NewMetadataRepository() *MetadataRepository {
	return &MetadataRepository{execCommand: runCargoMetadata}
}

// Verify MetadataRepository implements repositories.MetadataRepository.
var _ repositories.MetadataRepository = (*MetadataRepository)(nil)

// Load runs cargo metadata in dir and decodes the report.
func (r *MetadataRepository) Load(ctx context.Context, dir string) (*entities.Metadata, error) {
	logger.Debugf("running %s metadata --format-version %s in %q", cargoBinary(), metadataFormatVersion, dir)

	output, err := r.execCommand(ctx, dir)
	if err != nil {
		// Partial output from a failed command is never parsed.
		return nil, err
	}

	var metadata entities.Metadata
	if unmarshalErr := json.Unmarshal(output, &metadata); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidMetadata, unmarshalErr)
	}

	if metadata.Packages == nil {
		return nil, fmt.Errorf("%w: missing packages list", entities.ErrInvalidMetadata)
	}

	return &metadata, nil
}

// cargoBinary resolves the cargo executable, honoring the CARGO env var
// the same way cargo's own subcommand protocol does.
func cargoBinary() string {
	if bin := os.Getenv("CARGO"); bin != "" {
		return bin
	}
	return "cargo"
}

// runCargoMetadata executes the metadata command and captures stdout.
func runCargoMetadata(ctx context.Context, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, cargoBinary(), "metadata", "--format-version", metadataFormatVersion)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", entities.ErrCargoExecution, msg)
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrCargoExecution, err)
	}

	return stdout.Bytes(), nil
}
