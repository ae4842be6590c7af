/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes a company and its reporting queries via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the payroll
  package for every number.

ENDPOINTS:
  Company:
    GET    /api/company                       Name and headcount
    GET    /api/roster                        Roster JSON export

  Employees:
    GET    /api/employees                     List employees
    POST   /api/employees                     Hire employee (roster entry JSON)
    GET    /api/employees/{id}                Employee details
    POST   /api/employees/{id}/sales          Record a sale (sales people only)
    GET    /api/employees/{id}/payslip        Payslip for ?month=&year=

  Reports:
    GET    /api/reports                       Six reporting queries + payslips
    GET    /api/reports/payslips.csv          Payslip CSV
    GET    /api/reports/statement.pdf         Monthly statement PDF

  Scenarios:
    GET    /api/scenarios                     List demo scenarios
    POST   /api/scenarios/load                Replace the served company

PERIOD PARAMETERS:
  Reporting endpoints take ?month=1..12&year=YYYY. When both are omitted
  the period of the loaded scenario is used.

CONCURRENCY:
  payroll.Company is not synchronized. The handler owns the only
  reference and guards it with an RWMutex: reports take the read lock,
  hiring, recording sales and loading scenarios take the write lock.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Employee or scenario not found
  - 409: Duplicate employee ID
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/scenarios"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Roster   *factory.RosterFactory
	validate *validator.Validate
	log      zerolog.Logger

	mu              sync.RWMutex
	company         *payroll.Company
	defaultPeriod   payroll.Period
	currentScenario string
}

// NewHandler creates a handler serving company. defaultPeriod is used when
// a request names no period.
func NewHandler(company *payroll.Company, defaultPeriod payroll.Period, logger zerolog.Logger) *Handler {
	return &Handler{
		Roster:        factory.NewRosterFactory(),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		log:           logger,
		company:       company,
		defaultPeriod: defaultPeriod,
	}
}

// NewScenarioHandler creates a handler serving a freshly loaded scenario.
func NewScenarioHandler(scenarioID string, logger zerolog.Logger) (*Handler, error) {
	h := NewHandler(payroll.NewCompany(""), payroll.CurrentPeriod(), logger)
	if err := h.loadScenario(scenarioID); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) loadScenario(id string) error {
	s, ok := scenarios.Get(id)
	if !ok {
		return fmt.Errorf("%w: scenario %q", errScenarioNotFound, id)
	}
	company, err := scenarios.Load(id)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.company = company
	h.defaultPeriod = s.Period
	h.currentScenario = id
	return nil
}

var errScenarioNotFound = errors.New("scenario not found")

// =============================================================================
// COMPANY ENDPOINTS
// =============================================================================

// GetCompany returns the served company's summary.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	writeJSON(w, http.StatusOK, CompanyDTO{
		Name:      h.company.Name(),
		Headcount: h.company.Len(),
		Scenario:  h.currentScenario,
	})
}

// GetRoster exports the company in roster JSON form.
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	writeJSON(w, http.StatusOK, h.Roster.ToJSON(h.company))
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	employees := h.company.Employees()
	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	e, err := h.company.Employee(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// CreateEmployee hires an employee described as a roster entry. Sales in
// the body are recorded too.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	e, err := h.Roster.BuildEmployee(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.mu.Lock()
	err = h.company.AddEmployee(e)
	h.mu.Unlock()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.log.Info().Str("employee_id", e.ID()).Str("role", string(e.Role())).Msg("employee hired")
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e))
}

// RecordSale appends a sale to a sales person.
func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Roster.Validate(req); err != nil {
		writeDomainError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e, err := h.company.Employee(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sp, ok := e.(*payroll.SalesPerson)
	if !ok {
		writeError(w, http.StatusBadRequest, "Employee does not record sales", nil)
		return
	}
	if err := factory.RecordSale(sp, req); err != nil {
		writeDomainError(w, err)
		return
	}

	h.log.Info().Str("employee_id", sp.ID()).Int("month", req.Month).Int("year", req.Year).Msg("sale recorded")
	writeJSON(w, http.StatusCreated, toEmployeeDTO(sp))
}

// GetPayslip returns one employee's pay for the requested period.
func (h *Handler) GetPayslip(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, err := h.parsePeriod(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	e, err := h.company.Employee(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayslipDTO(payroll.NewPayslip(e, p)))
}

// =============================================================================
// REPORT ENDPOINTS
// =============================================================================

// GetReport returns totals, winners and payslips for a period.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, err := h.parsePeriod(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(h.company.Report(p), h.company.Payroll(p)))
}

func (h *Handler) GetPayslipsCSV(w http.ResponseWriter, r *http.Request) {
	h.writeDownload(w, r, report.FormatCSV, "text/csv")
}

func (h *Handler) GetStatementPDF(w http.ResponseWriter, r *http.Request) {
	h.writeDownload(w, r, report.FormatPDF, "application/pdf")
}

// writeDownload renders into a buffer first so a rendering failure can
// still produce a JSON error.
func (h *Handler) writeDownload(w http.ResponseWriter, r *http.Request, format, contentType string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, err := h.parsePeriod(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, h.company, p); err != nil {
		h.log.Error().Err(err).Str("format", format).Msg("report rendering failed")
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.%s", p, format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parsePeriod reads ?month=&year=. Both omitted means the default period.
// Must be called with h.mu held.
func (h *Handler) parsePeriod(r *http.Request) (payroll.Period, error) {
	q := r.URL.Query()
	month, year := q.Get("month"), q.Get("year")
	if month == "" && year == "" {
		return h.defaultPeriod, nil
	}

	var pq PeriodQuery
	var err error
	if pq.Month, err = strconv.Atoi(month); err != nil {
		return payroll.Period{}, &payroll.ValidationError{Field: "month", Reason: "must be an integer"}
	}
	if pq.Year, err = strconv.Atoi(year); err != nil {
		return payroll.Period{}, &payroll.ValidationError{Field: "year", Reason: "must be an integer"}
	}
	if err := h.Roster.Validate(pq); err != nil {
		return payroll.Period{}, err
	}
	return pq.Period(), nil
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	list := scenarios.List()
	dtos := make([]ScenarioDTO, 0, len(list))
	for _, s := range list {
		dtos = append(dtos, toScenarioDTO(s))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario replaces the served company. Previous hires and sales are
// discarded.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "scenario_id is required", err)
		return
	}

	if err := h.loadScenario(req.ScenarioID); err != nil {
		if errors.Is(err, errScenarioNotFound) {
			writeError(w, http.StatusNotFound, "Scenario not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.log.Info().Str("scenario", req.ScenarioID).Msg("scenario loaded")
	h.GetCompany(w, r)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps payroll errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case payroll.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Employee not found", err)
	case errors.Is(err, payroll.ErrDuplicateEmployee):
		writeError(w, http.StatusConflict, "Employee already exists", err)
	case payroll.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid input", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}
