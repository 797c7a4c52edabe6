package main

import (
	"go.uber.org/dig"

	"github.com/cratekit/cratever/internal"
	"github.com/cratekit/cratever/internal/infrastructure/controllers"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectVersionController() *controllers.VersionController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var versionController *controllers.VersionController
	if err := container.Invoke(func(vc *controllers.VersionController) {
		versionController = vc
	}); err != nil {
		panic(err)
	}

	return versionController
}
