package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/udyog-books/ledger-server/internal/ai"
	"github.com/udyog-books/ledger-server/internal/handlers/v1/dashboard"
	"github.com/udyog-books/ledger-server/internal/handlers/v1/insights"
	"github.com/udyog-books/ledger-server/internal/handlers/v1/invoice"
	"github.com/udyog-books/ledger-server/internal/handlers/v1/status"
	"github.com/udyog-books/ledger-server/internal/handlers/v1/transaction"
	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/operator"
	"github.com/udyog-books/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Parser   ai.IInvoiceParser
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	dashboard.NewGetMetricsHandler(r.Service.Dashboard).Register(humaAPI)
	insights.NewGetInsightsHandler(r.Service.Insight).Register(humaAPI)
	invoice.NewParseInvoiceHandler(r.Parser).Register(humaAPI)

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
