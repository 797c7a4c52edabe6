package internal

import (
	"go.uber.org/dig"

	"github.com/cratekit/cratever/internal/domain/commands"
	"github.com/cratekit/cratever/internal/domain/entities"
	"github.com/cratekit/cratever/internal/infrastructure/controllers"
	"github.com/cratekit/cratever/internal/infrastructure/repositories"
)

// AppInternal aggregates the CLI controllers resolved from the container.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(ctrls *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: ctrls}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
