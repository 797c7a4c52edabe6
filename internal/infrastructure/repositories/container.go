package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/cratekit/cratever/internal/domain/repositories"
	"github.com/cratekit/cratever/internal/infrastructure/repositories/cargo"
	"github.com/cratekit/cratever/internal/infrastructure/repositories/gittag"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(cargo.NewMetadataRepository); err != nil {
		return err
	}
	if err := container.Provide(gittag.NewTagRepository); err != nil {
		return err
	}

	// Bind domain interfaces to implementations
	if err := container.Provide(func(impl *cargo.MetadataRepository) domainRepos.MetadataRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gittag.TagRepository) domainRepos.TagRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
