package lifecycle

import "context"

// LifecycleRepository persists the append-only event tables. There is no update or delete path.
type LifecycleRepository interface {
	CreateVacation(ctx context.Context, record VacationRecord) (VacationRecord, error)
	CreateTransfer(ctx context.Context, record TransferRecord) (TransferRecord, error)
	CreateRetirement(ctx context.Context, record RetirementRecord) (RetirementRecord, error)
	CreateSuspension(ctx context.Context, record SuspensionRecord) (SuspensionRecord, error)
	CreateDeath(ctx context.Context, record DeathRecord) (DeathRecord, error)

	// ListVacations narrows by a case-insensitive substring of the start date text when search is not empty.
	ListVacations(ctx context.Context, search string) ([]VacationEntry, error)
	ListTransfers(ctx context.Context) ([]TransferEntry, error)
	ListRetirements(ctx context.Context) ([]RetirementEntry, error)
	ListSuspensions(ctx context.Context) ([]SuspensionEntry, error)
	ListDeaths(ctx context.Context) ([]DeathEntry, error)

	GetHistory(ctx context.Context, employeeID string) (History, error)
}
