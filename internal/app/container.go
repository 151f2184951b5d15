package app

import (
	"github.com/sirupsen/logrus"

	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
	"github.com/wortkiste/wortkiste/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Add    usecase.AddUsecase
	Quiz   usecase.QuizUsecase
}
