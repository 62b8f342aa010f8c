package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reports/internal/handlers/v1/report"
	"github.com/carson-networks/budget-reports/internal/handlers/v1/status"
	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	apiMux := http.NewServeMux()
	humaAPI := humago.New(apiMux, huma.DefaultConfig("budget-reports", "1.0.0"))
	report.NewPlanningHandler(r.Service.Planning).Register(humaAPI)
	report.NewHistoricalHandler(r.Service.Historical).Register(humaAPI)
	report.NewSpendHandler(r.Service.Spend).Register(humaAPI)
	report.NewSummaryHandler(r.Service.Summary).Register(humaAPI)
	mux.Handle("/v1/", logging.RequestLogger(r.Logger, apiMux))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
