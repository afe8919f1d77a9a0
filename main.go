package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/api"
	"github.com/carson-networks/atm-server/internal/config"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator"
	"github.com/carson-networks/atm-server/internal/service"
	"github.com/carson-networks/atm-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("atm-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	accounts := storage.NewSeededAccountStore()
	svc := service.NewService(accounts, envConfig.InitialBills, logger)

	delegator := operator.NewOperatorDelegator(svc.Session, envConfig.AutoReturnDelay())
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Operator: delegator,
			Service:  svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
