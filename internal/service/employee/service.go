package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
	"github.com/bluespark/hospital-hr-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultSectors are the hospital sectors counted when none are configured.
var DefaultSectors = []string{"Maternidade", "Laboratório", "Psiquiatria", "Medicina 1"}

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	sectors      []string
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, sectors []string) employee.EmployeeService {
	if len(sectors) == 0 {
		sectors = DefaultSectors
	}
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		sectors:      sectors,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	startYear := startDate.Year()
	if req.StartYear != nil {
		startYear = *req.StartYear
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	newEmployee := employee.Employee{
		ID:             id.String(),
		FirstName:      strings.TrimSpace(req.FirstName),
		Surname:        strings.TrimSpace(req.Surname),
		BirthDate:      &birthDate,
		IdentityNumber: strings.TrimSpace(req.IdentityNumber),
		Province:       strings.TrimSpace(req.Province),
		Naturality:     strings.TrimSpace(req.Naturality),
		Residence:      strings.TrimSpace(req.Residence),
		Gender:         employee.Gender(strings.ToUpper(req.Gender)),
		StartDate:      &startDate,
		StartYear:      startYear,
		Sector:         strings.TrimSpace(req.Sector),
		Department:     strings.TrimSpace(req.Department),
		Specialty:      strings.TrimSpace(req.Specialty),
		Category:       strings.TrimSpace(req.Category),
		NUIT:           strings.TrimSpace(req.NUIT),
		Career:         strings.TrimSpace(req.Career),
		AgeBand:        strings.TrimSpace(req.AgeBand),
		Status:         employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrIdentityNumberUsed) || errors.Is(err, employee.ErrNUITExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee hired", "employee_id", created.ID, "sector", created.Sector)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		existing, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		req.Apply(&existing)

		updated, err = s.employeeRepo.Update(txCtx, existing)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, employee.ErrIdentityNumberUsed),
			errors.Is(err, employee.ErrNUITExists):
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(updated), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, employee.NewEmployeeResponse(emp))
	}
	return resp, nil
}

// CountBySector implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CountBySector(ctx context.Context) ([]employee.SectorCountResponse, error) {
	counts, err := s.employeeRepo.CountBySectors(ctx, s.sectors)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by sector: %w", err)
	}

	resp := make([]employee.SectorCountResponse, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, employee.SectorCountResponse{Sector: c.Sector, Total: c.Total})
	}
	return resp, nil
}
