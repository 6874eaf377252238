package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfreitas/contas/internal/category"
	categoryStore "github.com/mfreitas/contas/internal/category/store"
	"github.com/mfreitas/contas/internal/config"
	"github.com/mfreitas/contas/internal/database"
	"github.com/mfreitas/contas/internal/export"
	contasHttp "github.com/mfreitas/contas/internal/http"
	categoryHandler "github.com/mfreitas/contas/internal/http/category"
	exportHandler "github.com/mfreitas/contas/internal/http/export"
	importHandler "github.com/mfreitas/contas/internal/http/importcsv"
	personHandler "github.com/mfreitas/contas/internal/http/person"
	reportHandler "github.com/mfreitas/contas/internal/http/report"
	txHandler "github.com/mfreitas/contas/internal/http/transaction"
	"github.com/mfreitas/contas/internal/importer"
	"github.com/mfreitas/contas/internal/importer/ledgercsv"
	"github.com/mfreitas/contas/internal/person"
	personStore "github.com/mfreitas/contas/internal/person/store"
	"github.com/mfreitas/contas/internal/report"
	reportStore "github.com/mfreitas/contas/internal/report/store"
	"github.com/mfreitas/contas/internal/transaction"
	txStore "github.com/mfreitas/contas/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ledgerRepo := reportStore.New(db)

	var (
		personService      = person.NewService(personStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		reportService      = report.NewService(ledgerRepo)
		importService      = importer.NewService(ledgercsv.NewParser())
		exportService      = export.NewService(ledgerRepo)
	)

	var (
		personH      = personHandler.NewHandler(personService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		reportH      = reportHandler.NewHandler(reportService)
		importH      = importHandler.NewHandler(importService, personService, categoryService, transactionService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := contasHttp.New(personH, categoryH, transactionH, reportH, importH, exportH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
