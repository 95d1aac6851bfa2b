package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/lifecycle"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/metrics"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
	"github.com/bluespark/hospital-hr-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const operationReinstate = "reinstate"

type LifecycleServiceImpl struct {
	db            *database.DB
	employeeRepo  employee.EmployeeRepository
	lifecycleRepo lifecycle.LifecycleRepository
}

func NewLifecycleService(db *database.DB, employeeRepo employee.EmployeeRepository, lifecycleRepo lifecycle.LifecycleRepository) lifecycle.LifecycleService {
	return &LifecycleServiceImpl{
		db:            db,
		employeeRepo:  employeeRepo,
		lifecycleRepo: lifecycleRepo,
	}
}

// apply runs one unit of work: lock the employee row, validate the transition to target,
// run write (the event insert) and persist the new status. Either everything commits or
// the transaction is rolled back and the classified error is returned.
func (s *LifecycleServiceImpl) apply(ctx context.Context, operation, employeeID string, target employee.Status, write func(txCtx context.Context) error) (employee.Employee, error) {
	var (
		updated employee.Employee
		from    employee.Status
	)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}
		from = emp.Status

		if err := emp.ApplyTransition(target); err != nil {
			return err
		}

		if write != nil {
			if err := write(txCtx); err != nil {
				return err
			}
		}

		if err := s.employeeRepo.UpdateStatus(txCtx, emp.ID, emp.Status); err != nil {
			return err
		}
		updated = emp
		return nil
	})
	if err != nil {
		err = classify(err)
		metrics.RecordFailure(operation, failureReason(err))
		slog.Warn("lifecycle operation failed", "operation", operation, "employee_id", employeeID, "target", target, "error", err)
		return employee.Employee{}, err
	}

	metrics.RecordTransition(string(from), string(target))
	slog.Info("employee status changed", "operation", operation, "employee_id", employeeID, "from", from, "to", target)
	return updated, nil
}

// classify keeps the recoverable errors and folds everything else into ErrStorageFault.
func classify(err error) error {
	if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrInvalidTransition) {
		return err
	}
	return fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, employee.ErrInvalidTransition):
		return metrics.ReasonInvalidTransition
	case errors.Is(err, lifecycle.ErrStorageFault):
		return metrics.ReasonStorage
	}
	return ""
}

func (s *LifecycleServiceImpl) rejectInvalid(operation string, err error) error {
	metrics.RecordFailure(operation, metrics.ReasonValidation)
	return err
}

func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: generate record id: %w", lifecycle.ErrStorageFault, err)
	}
	return id.String(), nil
}

func parseDate(value string) time.Time {
	t, _ := time.Parse(lifecycle.DateLayout, value)
	return t
}

// RecordVacation implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) RecordVacation(ctx context.Context, req lifecycle.CreateVacationRequest) (lifecycle.VacationResponse, error) {
	operation := string(lifecycle.KindVacation)
	if err := req.Validate(); err != nil {
		return lifecycle.VacationResponse{}, s.rejectInvalid(operation, err)
	}
	id, err := newRecordID()
	if err != nil {
		return lifecycle.VacationResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	record := lifecycle.VacationRecord{
		ID:         id,
		EmployeeID: employeeID,
		StartDate:  parseDate(req.StartDate),
		EndDate:    parseDate(req.EndDate),
	}

	var created lifecycle.VacationRecord
	_, err = s.apply(ctx, operation, employeeID, lifecycle.KindVacation.TargetStatus(), func(txCtx context.Context) error {
		var err error
		created, err = s.lifecycleRepo.CreateVacation(txCtx, record)
		return err
	})
	if err != nil {
		return lifecycle.VacationResponse{}, err
	}

	metrics.RecordEvent(operation)
	return mapVacation(created, ""), nil
}

// RecordTransfer implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) RecordTransfer(ctx context.Context, req lifecycle.CreateTransferRequest) (lifecycle.TransferResponse, error) {
	operation := string(lifecycle.KindTransfer)
	if err := req.Validate(); err != nil {
		return lifecycle.TransferResponse{}, s.rejectInvalid(operation, err)
	}
	id, err := newRecordID()
	if err != nil {
		return lifecycle.TransferResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	record := lifecycle.TransferRecord{
		ID:           id,
		EmployeeID:   employeeID,
		TransferDate: parseDate(req.TransferDate),
		Destination:  strings.TrimSpace(req.Destination),
	}

	var created lifecycle.TransferRecord
	_, err = s.apply(ctx, operation, employeeID, lifecycle.KindTransfer.TargetStatus(), func(txCtx context.Context) error {
		var err error
		created, err = s.lifecycleRepo.CreateTransfer(txCtx, record)
		return err
	})
	if err != nil {
		return lifecycle.TransferResponse{}, err
	}

	metrics.RecordEvent(operation)
	return mapTransfer(created, ""), nil
}

// RecordRetirement implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) RecordRetirement(ctx context.Context, req lifecycle.CreateRetirementRequest) (lifecycle.RetirementResponse, error) {
	operation := string(lifecycle.KindRetirement)
	if err := req.Validate(); err != nil {
		return lifecycle.RetirementResponse{}, s.rejectInvalid(operation, err)
	}
	id, err := newRecordID()
	if err != nil {
		return lifecycle.RetirementResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	record := lifecycle.RetirementRecord{
		ID:             id,
		EmployeeID:     employeeID,
		RetirementDate: parseDate(req.RetirementDate),
		Age:            req.Age,
	}

	var created lifecycle.RetirementRecord
	_, err = s.apply(ctx, operation, employeeID, lifecycle.KindRetirement.TargetStatus(), func(txCtx context.Context) error {
		var err error
		created, err = s.lifecycleRepo.CreateRetirement(txCtx, record)
		return err
	})
	if err != nil {
		return lifecycle.RetirementResponse{}, err
	}

	metrics.RecordEvent(operation)
	return mapRetirement(created, ""), nil
}

// RecordSuspension implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) RecordSuspension(ctx context.Context, req lifecycle.CreateSuspensionRequest) (lifecycle.SuspensionResponse, error) {
	operation := string(lifecycle.KindSuspension)
	if err := req.Validate(); err != nil {
		return lifecycle.SuspensionResponse{}, s.rejectInvalid(operation, err)
	}
	id, err := newRecordID()
	if err != nil {
		return lifecycle.SuspensionResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	record := lifecycle.SuspensionRecord{
		ID:             id,
		EmployeeID:     employeeID,
		SuspensionDate: parseDate(req.SuspensionDate),
		Reason:         strings.TrimSpace(req.Reason),
	}

	var created lifecycle.SuspensionRecord
	_, err = s.apply(ctx, operation, employeeID, lifecycle.KindSuspension.TargetStatus(), func(txCtx context.Context) error {
		var err error
		created, err = s.lifecycleRepo.CreateSuspension(txCtx, record)
		return err
	})
	if err != nil {
		return lifecycle.SuspensionResponse{}, err
	}

	metrics.RecordEvent(operation)
	return mapSuspension(created, ""), nil
}

// RecordDeath implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) RecordDeath(ctx context.Context, req lifecycle.CreateDeathRequest) (lifecycle.DeathResponse, error) {
	operation := string(lifecycle.KindDeath)
	if err := req.Validate(); err != nil {
		return lifecycle.DeathResponse{}, s.rejectInvalid(operation, err)
	}
	id, err := newRecordID()
	if err != nil {
		return lifecycle.DeathResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	record := lifecycle.DeathRecord{
		ID:          id,
		EmployeeID:  employeeID,
		DateOfDeath: parseDate(req.DateOfDeath),
		Age:         req.Age,
	}

	var created lifecycle.DeathRecord
	_, err = s.apply(ctx, operation, employeeID, lifecycle.KindDeath.TargetStatus(), func(txCtx context.Context) error {
		var err error
		created, err = s.lifecycleRepo.CreateDeath(txCtx, record)
		return err
	})
	if err != nil {
		return lifecycle.DeathResponse{}, err
	}

	metrics.RecordEvent(operation)
	return mapDeath(created, ""), nil
}

// Reinstate implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) Reinstate(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return employee.EmployeeResponse{}, s.rejectInvalid(operationReinstate, validator.ValidationErrors{
			{Field: "id", Message: "id must be a valid UUID"},
		})
	}

	emp, err := s.apply(ctx, operationReinstate, employeeID, employee.StatusActive, nil)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListVacations implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) ListVacations(ctx context.Context, search string) ([]lifecycle.VacationResponse, error) {
	entries, err := s.lifecycleRepo.ListVacations(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}
	resp := make([]lifecycle.VacationResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapVacation(e.VacationRecord, e.EmployeeName))
	}
	return resp, nil
}

// ListTransfers implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) ListTransfers(ctx context.Context) ([]lifecycle.TransferResponse, error) {
	entries, err := s.lifecycleRepo.ListTransfers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}
	resp := make([]lifecycle.TransferResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapTransfer(e.TransferRecord, e.EmployeeName))
	}
	return resp, nil
}

// ListRetirements implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) ListRetirements(ctx context.Context) ([]lifecycle.RetirementResponse, error) {
	entries, err := s.lifecycleRepo.ListRetirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}
	resp := make([]lifecycle.RetirementResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapRetirement(e.RetirementRecord, e.EmployeeName))
	}
	return resp, nil
}

// ListSuspensions implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) ListSuspensions(ctx context.Context) ([]lifecycle.SuspensionResponse, error) {
	entries, err := s.lifecycleRepo.ListSuspensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}
	resp := make([]lifecycle.SuspensionResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapSuspension(e.SuspensionRecord, e.EmployeeName))
	}
	return resp, nil
}

// ListDeaths implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) ListDeaths(ctx context.Context) ([]lifecycle.DeathResponse, error) {
	entries, err := s.lifecycleRepo.ListDeaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}
	resp := make([]lifecycle.DeathResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapDeath(e.DeathRecord, e.EmployeeName))
	}
	return resp, nil
}

// GetHistory implements lifecycle.LifecycleService.
func (s *LifecycleServiceImpl) GetHistory(ctx context.Context, employeeID string) (lifecycle.HistoryResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return lifecycle.HistoryResponse{}, validator.ValidationErrors{
			{Field: "id", Message: "id must be a valid UUID"},
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return lifecycle.HistoryResponse{}, err
		}
		return lifecycle.HistoryResponse{}, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}

	h, err := s.lifecycleRepo.GetHistory(ctx, employeeID)
	if err != nil {
		return lifecycle.HistoryResponse{}, fmt.Errorf("%w: %w", lifecycle.ErrStorageFault, err)
	}

	name := emp.FullName()
	resp := lifecycle.HistoryResponse{
		EmployeeID:  emp.ID,
		Vacations:   make([]lifecycle.VacationResponse, 0, len(h.Vacations)),
		Transfers:   make([]lifecycle.TransferResponse, 0, len(h.Transfers)),
		Retirements: make([]lifecycle.RetirementResponse, 0, len(h.Retirements)),
		Suspensions: make([]lifecycle.SuspensionResponse, 0, len(h.Suspensions)),
		Deaths:      make([]lifecycle.DeathResponse, 0, len(h.Deaths)),
	}
	for _, v := range h.Vacations {
		resp.Vacations = append(resp.Vacations, mapVacation(v, name))
	}
	for _, t := range h.Transfers {
		resp.Transfers = append(resp.Transfers, mapTransfer(t, name))
	}
	for _, r := range h.Retirements {
		resp.Retirements = append(resp.Retirements, mapRetirement(r, name))
	}
	for _, su := range h.Suspensions {
		resp.Suspensions = append(resp.Suspensions, mapSuspension(su, name))
	}
	for _, d := range h.Deaths {
		resp.Deaths = append(resp.Deaths, mapDeath(d, name))
	}
	return resp, nil
}

func mapVacation(v lifecycle.VacationRecord, employeeName string) lifecycle.VacationResponse {
	return lifecycle.VacationResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: employeeName,
		StartDate:    v.StartDate.Format(lifecycle.DateLayout),
		EndDate:      v.EndDate.Format(lifecycle.DateLayout),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
	}
}

func mapTransfer(t lifecycle.TransferRecord, employeeName string) lifecycle.TransferResponse {
	return lifecycle.TransferResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: employeeName,
		TransferDate: t.TransferDate.Format(lifecycle.DateLayout),
		Destination:  t.Destination,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

func mapRetirement(r lifecycle.RetirementRecord, employeeName string) lifecycle.RetirementResponse {
	return lifecycle.RetirementResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   employeeName,
		RetirementDate: r.RetirementDate.Format(lifecycle.DateLayout),
		Age:            r.Age,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func mapSuspension(s lifecycle.SuspensionRecord, employeeName string) lifecycle.SuspensionResponse {
	return lifecycle.SuspensionResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		EmployeeName:   employeeName,
		SuspensionDate: s.SuspensionDate.Format(lifecycle.DateLayout),
		Reason:         s.Reason,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func mapDeath(d lifecycle.DeathRecord, employeeName string) lifecycle.DeathResponse {
	return lifecycle.DeathResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: employeeName,
		DateOfDeath:  d.DateOfDeath.Format(lifecycle.DateLayout),
		Age:          d.Age,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}
