package lifecycle

import (
	"context"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
)

// LifecycleService owns employee status changes. Every Record* call is a single unit of work:
// the event row and the new status are committed together or not at all.
type LifecycleService interface {
	RecordVacation(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	RecordTransfer(ctx context.Context, req CreateTransferRequest) (TransferResponse, error)
	RecordRetirement(ctx context.Context, req CreateRetirementRequest) (RetirementResponse, error)
	RecordSuspension(ctx context.Context, req CreateSuspensionRequest) (SuspensionResponse, error)
	RecordDeath(ctx context.Context, req CreateDeathRequest) (DeathResponse, error)

	// Reinstate moves the employee back to ACTIVE. No event row is written.
	Reinstate(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)

	ListVacations(ctx context.Context, search string) ([]VacationResponse, error)
	ListTransfers(ctx context.Context) ([]TransferResponse, error)
	ListRetirements(ctx context.Context) ([]RetirementResponse, error)
	ListSuspensions(ctx context.Context) ([]SuspensionResponse, error)
	ListDeaths(ctx context.Context) ([]DeathResponse, error)

	GetHistory(ctx context.Context, employeeID string) (HistoryResponse, error)
}
