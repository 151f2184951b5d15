//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/wortkiste/wortkiste/internal/adapter/linguee"
	adapterrepo "github.com/wortkiste/wortkiste/internal/adapter/repository"
	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
	"github.com/wortkiste/wortkiste/internal/infrastructure/logging"
	"github.com/wortkiste/wortkiste/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewDictionaryStore,
	adapterrepo.NewSessionLog,
	linguee.NewClient,
)

var usecaseSet = wire.NewSet(
	usecase.NewAddUsecase,
	usecase.NewQuizUsecase,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		logging.NewLogger,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "Config", "Logger", "Add", "Quiz"),
	)
	return nil, nil, nil
}
