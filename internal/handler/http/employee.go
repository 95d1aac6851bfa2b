package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/lifecycle"
	"github.com/bluespark/hospital-hr-backend-go/internal/handler/http/middleware"
	"github.com/bluespark/hospital-hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListCurrentEmployees(w http.ResponseWriter, r *http.Request)
	ListPastEmployees(w http.ResponseWriter, r *http.Request)
	ListEmployeesByStatus(w http.ResponseWriter, r *http.Request)
	CountBySector(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ReinstateEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService  employee.EmployeeService
	lifecycleService lifecycle.LifecycleService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, lifecycleService lifecycle.LifecycleService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:  employeeService,
		lifecycleService: lifecycleService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := employee.ListEmployeeRequest{
		Status:     query.Get("status"),
		Search:     query.Get("search"),
		Sector:     query.Get("sector"),
		Department: query.Get("department"),
		Province:   query.Get("province"),
		Naturality: query.Get("naturality"),
		Gender:     query.Get("gender"),
		StartYear:  query.Get("start_year"),
	}

	filter, err := req.ToFilter()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.list(w, r, filter, query.Get("status"))
}

// ListCurrentEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListCurrentEmployees(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, employee.ListFilter{
		Statuses: employee.CurrentStatuses,
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}, "current")
}

// ListPastEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListPastEmployees(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, employee.ListFilter{
		Statuses: employee.PastStatuses,
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}, "past")
}

// ListEmployeesByStatus implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployeesByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := employee.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.list(w, r, employee.ListFilter{
		Statuses: []employee.Status{status},
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}, string(status))
}

func (h *employeeHandlerImpl) list(w http.ResponseWriter, r *http.Request, filter employee.ListFilter, label string) {
	employees, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, employees, label)
}

// CountBySector implements EmployeeHandler
func (h *employeeHandlerImpl) CountBySector(w http.ResponseWriter, r *http.Request) {
	counts, err := h.employeeService.CountBySector(r.Context())
	if err != nil {
		slog.Error("CountBySector service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeHistory implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	history, err := h.lifecycleService.GetHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", result.ID, "operator_id", middleware.UserIDFromContext(r.Context()))
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// ReinstateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) ReinstateEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.Reinstate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee returned to active", result)
}
