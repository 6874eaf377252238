package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mfreitas/contas/internal/http/category"
	"github.com/mfreitas/contas/internal/http/export"
	"github.com/mfreitas/contas/internal/http/importcsv"
	"github.com/mfreitas/contas/internal/http/person"
	"github.com/mfreitas/contas/internal/http/report"
	"github.com/mfreitas/contas/internal/http/transaction"
)

func New(
	peopleV1 *person.Handler,
	categoriesV1 *category.Handler,
	transactionsV1 *transaction.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/people", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			peopleV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
