package controllers

import (
	"go.uber.org/dig"

	"github.com/cratekit/cratever/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewSetController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	versionController *VersionController,
	listController *ListController,
	checkController *CheckController,
	setController *SetController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
		listController,
		checkController,
		setController,
	}
}
