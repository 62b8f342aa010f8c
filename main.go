package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reports/api"
	"github.com/carson-networks/budget-reports/internal/config"
	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
	"github.com/carson-networks/budget-reports/internal/ynab"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-reports starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	client := ynab.NewClient(envConfig.YnabBaseURL, envConfig.YnabAccessToken)
	svc := service.NewService(client, service.Config{
		SkipCategoryGroupIDs: envConfig.SkipCategoryGroupIDs,
		GroupDisplayNames:    envConfig.GroupDisplayNames,
		AccountGroupMapping:  envConfig.AccountGroupMapping,
		PayeeAliases:         envConfig.PayeeAliases,
	})

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
