/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:     Incoming X-Request-Id or a fresh UUID
  2. RequestLogger: One zerolog line per request
  3. Recoverer:     Panic recovery (500 instead of crash)
  4. CORS:          Cross-origin requests for a frontend

ROUTE GROUPS:
  /api/health           Liveness
  /api/company          Served company summary
  /api/roster           Roster export
  /api/employees/*      Employees, sales, payslips
  /api/reports/*        Reporting queries and downloads
  /api/scenarios/*      Demo scenarios

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestID)
	r.Use(RequestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/company", h.GetCompany)
		r.Get("/roster", h.GetRoster)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Post("/{id}/sales", h.RecordSale)
			r.Get("/{id}/payslip", h.GetPayslip)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.GetReport)
			r.Get("/payslips.csv", h.GetPayslipsCSV)
			r.Get("/statement.pdf", h.GetStatementPDF)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
