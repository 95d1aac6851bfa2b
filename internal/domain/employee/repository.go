package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	CountBySectors(ctx context.Context, sectors []string) ([]SectorCount, error)
}
