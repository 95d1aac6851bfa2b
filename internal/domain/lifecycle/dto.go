package lifecycle

import (
	"strings"
	"unicode/utf8"

	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
)

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

const maxAge = 150

type CreateVacationRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmployeeID(errs, r.EmployeeID)

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTransferRequest struct {
	EmployeeID   string `json:"employee_id"`
	TransferDate string `json:"transfer_date"`
	Destination  string `json:"destination"`
}

func (r *CreateTransferRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmployeeID(errs, r.EmployeeID)
	errs = validateDate(errs, "transfer_date", r.TransferDate)

	if validator.IsEmpty(r.Destination) {
		errs = append(errs, validator.ValidationError{Field: "destination", Message: "destination is required"})
	} else if utf8.RuneCountInString(r.Destination) > 40 {
		errs = append(errs, validator.ValidationError{Field: "destination", Message: "destination must not exceed 40 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRetirementRequest struct {
	EmployeeID     string `json:"employee_id"`
	RetirementDate string `json:"retirement_date"`
	Age            int    `json:"age"`
}

func (r *CreateRetirementRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmployeeID(errs, r.EmployeeID)
	errs = validateDate(errs, "retirement_date", r.RetirementDate)
	if r.Age <= 0 || r.Age > maxAge {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "age must be between 1 and 150"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSuspensionRequest struct {
	EmployeeID     string `json:"employee_id"`
	SuspensionDate string `json:"suspension_date"`
	Reason         string `json:"reason"`
}

func (r *CreateSuspensionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmployeeID(errs, r.EmployeeID)
	errs = validateDate(errs, "suspension_date", r.SuspensionDate)
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	} else if utf8.RuneCountInString(r.Reason) > 50 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 50 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDeathRequest struct {
	EmployeeID  string `json:"employee_id"`
	DateOfDeath string `json:"date_of_death"`
	Age         int    `json:"age"`
}

func (r *CreateDeathRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmployeeID(errs, r.EmployeeID)
	errs = validateDate(errs, "date_of_death", r.DateOfDeath)
	if r.Age < 0 || r.Age > maxAge {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "age must be between 0 and 150"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmployeeID(errs validator.ValidationErrors, id string) validator.ValidationErrors {
	if validator.IsEmpty(id) {
		return append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidUUID(strings.TrimSpace(id)) {
		return append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	return errs
}

func validateDate(errs validator.ValidationErrors, field, value string) validator.ValidationErrors {
	if _, ok := validator.IsValidDate(value); !ok {
		return append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
	}
	return errs
}

type VacationResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CreatedAt    string `json:"created_at"`
}

type TransferResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	TransferDate string `json:"transfer_date"`
	Destination  string `json:"destination"`
	CreatedAt    string `json:"created_at"`
}

type RetirementResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	RetirementDate string `json:"retirement_date"`
	Age            int    `json:"age"`
	CreatedAt      string `json:"created_at"`
}

type SuspensionResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	SuspensionDate string `json:"suspension_date"`
	Reason         string `json:"reason"`
	CreatedAt      string `json:"created_at"`
}

type DeathResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	DateOfDeath  string `json:"date_of_death"`
	Age          int    `json:"age"`
	CreatedAt    string `json:"created_at"`
}

type HistoryResponse struct {
	EmployeeID  string               `json:"employee_id"`
	Vacations   []VacationResponse   `json:"vacations"`
	Transfers   []TransferResponse   `json:"transfers"`
	Retirements []RetirementResponse `json:"retirements"`
	Suspensions []SuspensionResponse `json:"suspensions"`
	Deaths      []DeathResponse      `json:"deaths"`
}
