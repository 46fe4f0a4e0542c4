package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/udyog-books/ledger-server/api"
	"github.com/udyog-books/ledger-server/internal/ai"
	"github.com/udyog-books/ledger-server/internal/config"
	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/operator"
	"github.com/udyog-books/ledger-server/internal/service"
	"github.com/udyog-books/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	aiClient := ai.NewClient(envConfig.OpenAIAPIKey, envConfig.OpenAIModel)
	svc := service.NewService(dbStorage, aiClient, envConfig.ReportingCurrency)

	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
			Parser:   aiClient,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
