package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/buxfer/internal/events"
	"github.com/MrJamesThe3rd/buxfer/internal/http/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/http/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/http/category"
	"github.com/MrJamesThe3rd/buxfer/internal/http/debt"
	"github.com/MrJamesThe3rd/buxfer/internal/http/device"
	"github.com/MrJamesThe3rd/buxfer/internal/http/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/http/export"
	"github.com/MrJamesThe3rd/buxfer/internal/http/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/http/income"
	"github.com/MrJamesThe3rd/buxfer/internal/http/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/http/todo"
)

const apiPrefix = "/api/v1"

// Handlers groups the v1 API handlers.
type Handlers struct {
	Auth       *auth.Handler
	Expenses   *expense.Handler
	Recurring  *recurring.Handler
	Goals      *goal.Handler
	Todos      *todo.Handler
	Debts      *debt.Handler
	Income     *income.Handler
	Categories *category.Handler
	Analytics  *analytics.Handler
	Export     *export.Handler
	Device     *device.Handler
}

type Options struct {
	CORSOrigins []string
	// Authenticate guards every route except the auth endpoints.
	Authenticate func(http.Handler) http.Handler
	Publisher    events.Publisher
	Metrics      *Metrics
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.Noop{}
	}

	router.Route(apiPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(opts.Authenticate)
			r.Use(Notify(publisher, apiPrefix))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))

				r.Route("/expenses", h.Expenses.Routes)
				r.Route("/recurring", h.Recurring.Routes)
				r.Route("/goals", h.Goals.Routes)
				r.Route("/todos", h.Todos.Routes)
				r.Route("/debts", h.Debts.Routes)
				r.Route("/income", h.Income.Routes)
				r.Route("/categories", h.Categories.Routes)
				r.Route("/analytics", h.Analytics.Routes)
				r.Route("/me", h.Device.Routes)
			})

			r.Route("/export", h.Export.Routes)
		})
	})

	return router
}
