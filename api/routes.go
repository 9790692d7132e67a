package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/analytics"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/classification"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/health"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/note"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/snapshot"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/taxonomy"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))
	health.NewHandler(r.Storage.DB).Register(humaAPI)
	taxonomy.NewGetTaxonomyMapHandler(r.Service.Taxonomy).Register(humaAPI)
	taxonomy.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	taxonomy.NewRenameCategoryHandler(r.Operator).Register(humaAPI)
	taxonomy.NewMoveCategoryHandler(r.Operator).Register(humaAPI)
	taxonomy.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)
	classification.NewAssignCategoryHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	analytics.NewTaxonomyCountHandler(r.Service.Analytics).Register(humaAPI)
	analytics.NewUncategorizedCountHandler(r.Service.Analytics).Register(humaAPI)
	note.NewGetNoteHandler(r.Service.Ledger).Register(humaAPI)
	note.NewUpsertNoteHandler(r.Operator).Register(humaAPI)
	note.NewDeleteNoteHandler(r.Operator).Register(humaAPI)
	snapshot.NewListSnapshotsHandler(r.Service.Ledger).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
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
