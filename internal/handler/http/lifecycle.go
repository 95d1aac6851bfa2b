package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/lifecycle"
	"github.com/bluespark/hospital-hr-backend-go/internal/handler/http/response"
)

type LifecycleHandler interface {
	RecordVacation(w http.ResponseWriter, r *http.Request)
	RecordTransfer(w http.ResponseWriter, r *http.Request)
	RecordRetirement(w http.ResponseWriter, r *http.Request)
	RecordSuspension(w http.ResponseWriter, r *http.Request)
	RecordDeath(w http.ResponseWriter, r *http.Request)

	ListVacations(w http.ResponseWriter, r *http.Request)
	ListTransfers(w http.ResponseWriter, r *http.Request)
	ListRetirements(w http.ResponseWriter, r *http.Request)
	ListSuspensions(w http.ResponseWriter, r *http.Request)
	ListDeaths(w http.ResponseWriter, r *http.Request)
}

type lifecycleHandlerImpl struct {
	lifecycleService lifecycle.LifecycleService
}

func NewLifecycleHandler(lifecycleService lifecycle.LifecycleService) LifecycleHandler {
	return &lifecycleHandlerImpl{lifecycleService: lifecycleService}
}

// decode reads the JSON body into dst and answers 400 on malformed input.
func decode(w http.ResponseWriter, r *http.Request, operation string, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(operation+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// RecordVacation implements LifecycleHandler.
func (h *lifecycleHandlerImpl) RecordVacation(w http.ResponseWriter, r *http.Request) {
	var req lifecycle.CreateVacationRequest
	if !decode(w, r, "RecordVacation", &req) {
		return
	}

	result, err := h.lifecycleService.RecordVacation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation recorded", result)
}

// RecordTransfer implements LifecycleHandler.
func (h *lifecycleHandlerImpl) RecordTransfer(w http.ResponseWriter, r *http.Request) {
	var req lifecycle.CreateTransferRequest
	if !decode(w, r, "RecordTransfer", &req) {
		return
	}

	result, err := h.lifecycleService.RecordTransfer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer recorded", result)
}

// RecordRetirement implements LifecycleHandler.
func (h *lifecycleHandlerImpl) RecordRetirement(w http.ResponseWriter, r *http.Request) {
	var req lifecycle.CreateRetirementRequest
	if !decode(w, r, "RecordRetirement", &req) {
		return
	}

	result, err := h.lifecycleService.RecordRetirement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Retirement recorded", result)
}

// RecordSuspension implements LifecycleHandler.
func (h *lifecycleHandlerImpl) RecordSuspension(w http.ResponseWriter, r *http.Request) {
	var req lifecycle.CreateSuspensionRequest
	if !decode(w, r, "RecordSuspension", &req) {
		return
	}

	result, err := h.lifecycleService.RecordSuspension(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Suspension recorded", result)
}

// RecordDeath implements LifecycleHandler.
func (h *lifecycleHandlerImpl) RecordDeath(w http.ResponseWriter, r *http.Request) {
	var req lifecycle.CreateDeathRequest
	if !decode(w, r, "RecordDeath", &req) {
		return
	}

	result, err := h.lifecycleService.RecordDeath(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Death recorded", result)
}

// ListVacations implements LifecycleHandler.
func (h *lifecycleHandlerImpl) ListVacations(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	result, err := h.lifecycleService.ListVacations(r.Context(), search)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, search)
}

// ListTransfers implements LifecycleHandler.
func (h *lifecycleHandlerImpl) ListTransfers(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.ListTransfers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, "")
}

// ListRetirements implements LifecycleHandler.
func (h *lifecycleHandlerImpl) ListRetirements(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.ListRetirements(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, "")
}

// ListSuspensions implements LifecycleHandler.
func (h *lifecycleHandlerImpl) ListSuspensions(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.ListSuspensions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, "")
}

// ListDeaths implements LifecycleHandler.
func (h *lifecycleHandlerImpl) ListDeaths(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.ListDeaths(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, "")
}
