package employee

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName      string `json:"first_name"`
	Surname        string `json:"surname"`
	BirthDate      string `json:"birth_date"`
	IdentityNumber string `json:"identity_number"`
	Province       string `json:"province"`
	Naturality     string `json:"naturality"`
	Residence      string `json:"residence"`
	Gender         string `json:"gender"`
	StartDate      string `json:"start_date"`
	StartYear      *int   `json:"start_year,omitempty"`
	Sector         string `json:"sector"`
	Department     string `json:"department"`
	Specialty      string `json:"specialty"`
	Category       string `json:"category"`
	NUIT           string `json:"nuit"`
	Career         string `json:"career"`
	AgeBand        string `json:"age_band"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	} else if utf8.RuneCountInString(r.FirstName) > 50 {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not exceed 50 characters"})
	}
	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{Field: "surname", Message: "surname is required"})
	} else if utf8.RuneCountInString(r.Surname) > 50 {
		errs = append(errs, validator.ValidationError{Field: "surname", Message: "surname must not exceed 50 characters"})
	}

	birthDate, birthOK := validator.IsValidDate(r.BirthDate)
	if !birthOK {
		errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "birth_date must be in YYYY-MM-DD format"})
	}
	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if birthOK && startOK && !birthDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be after birth_date"})
	}
	if r.StartYear != nil && (*r.StartYear < 1900 || *r.StartYear > 2100) {
		errs = append(errs, validator.ValidationError{Field: "start_year", Message: "start_year must be between 1900 and 2100"})
	}

	if !validator.IsInSlice(strings.ToUpper(r.Gender), []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be M or F"})
	}
	if validator.IsEmpty(r.Sector) {
		errs = append(errs, validator.ValidationError{Field: "sector", Message: "sector is required"})
	} else if utf8.RuneCountInString(r.Sector) > 200 {
		errs = append(errs, validator.ValidationError{Field: "sector", Message: "sector must not exceed 200 characters"})
	}
	if r.NUIT != "" && !validator.IsValidNUIT(r.NUIT) {
		errs = append(errs, validator.ValidationError{Field: "nuit", Message: "nuit must be exactly 9 digits"})
	}

	for field, value := range map[string]string{
		"identity_number": r.IdentityNumber,
		"province":        r.Province,
		"naturality":      r.Naturality,
		"residence":       r.Residence,
		"age_band":        r.AgeBand,
	} {
		if utf8.RuneCountInString(value) > 50 {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must not exceed 50 characters"})
		}
	}
	for field, value := range map[string]string{
		"department": r.Department,
		"specialty":  r.Specialty,
		"category":   r.Category,
	} {
		if utf8.RuneCountInString(value) > 100 {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must not exceed 100 characters"})
		}
	}
	if utf8.RuneCountInString(r.Career) > 200 {
		errs = append(errs, validator.ValidationError{Field: "career", Message: "career must not exceed 200 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update. Status is deliberately absent:
// it only changes through lifecycle operations.
type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FirstName      *string `json:"first_name,omitempty"`
	Surname        *string `json:"surname,omitempty"`
	IdentityNumber *string `json:"identity_number,omitempty"`
	Province       *string `json:"province,omitempty"`
	Naturality     *string `json:"naturality,omitempty"`
	Residence      *string `json:"residence,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Sector         *string `json:"sector,omitempty"`
	Department     *string `json:"department,omitempty"`
	Specialty      *string `json:"specialty,omitempty"`
	Category       *string `json:"category,omitempty"`
	NUIT           *string `json:"nuit,omitempty"`
	Career         *string `json:"career,omitempty"`
	AgeBand        *string `json:"age_band,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name cannot be empty"})
	}
	if r.Surname != nil && validator.IsEmpty(*r.Surname) {
		errs = append(errs, validator.ValidationError{Field: "surname", Message: "surname cannot be empty"})
	}
	if r.Sector != nil && validator.IsEmpty(*r.Sector) {
		errs = append(errs, validator.ValidationError{Field: "sector", Message: "sector cannot be empty"})
	}
	if r.Gender != nil && !validator.IsInSlice(strings.ToUpper(*r.Gender), []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be M or F"})
	}
	if r.NUIT != nil && *r.NUIT != "" && !validator.IsValidNUIT(*r.NUIT) {
		errs = append(errs, validator.ValidationError{Field: "nuit", Message: "nuit must be exactly 9 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the set fields of the request onto emp.
func (r *UpdateEmployeeRequest) Apply(emp *Employee) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&emp.FirstName, r.FirstName)
	set(&emp.Surname, r.Surname)
	set(&emp.IdentityNumber, r.IdentityNumber)
	set(&emp.Province, r.Province)
	set(&emp.Naturality, r.Naturality)
	set(&emp.Residence, r.Residence)
	set(&emp.Sector, r.Sector)
	set(&emp.Department, r.Department)
	set(&emp.Specialty, r.Specialty)
	set(&emp.Category, r.Category)
	set(&emp.NUIT, r.NUIT)
	set(&emp.Career, r.Career)
	set(&emp.AgeBand, r.AgeBand)
	if r.Gender != nil {
		emp.Gender = Gender(strings.ToUpper(*r.Gender))
	}
}

type ListEmployeeRequest struct {
	Status     string
	Search     string
	Sector     string
	Department string
	Province   string
	Naturality string
	Gender     string
	StartYear  string
}

// ToFilter validates the raw query values and converts them.
func (r ListEmployeeRequest) ToFilter() (ListFilter, error) {
	var errs validator.ValidationErrors
	filter := ListFilter{
		Search:     strings.TrimSpace(r.Search),
		Sector:     strings.TrimSpace(r.Sector),
		Department: strings.TrimSpace(r.Department),
		Province:   strings.TrimSpace(r.Province),
		Naturality: strings.TrimSpace(r.Naturality),
		Gender:     strings.ToUpper(strings.TrimSpace(r.Gender)),
	}

	if r.Status != "" {
		for _, raw := range strings.Split(r.Status, ",") {
			s, err := ParseStatus(raw)
			if err != nil {
				errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status " + raw})
				continue
			}
			filter.Statuses = append(filter.Statuses, s)
		}
	}
	if r.StartYear != "" {
		if !validator.IsNumeric(r.StartYear) {
			errs = append(errs, validator.ValidationError{Field: "start_year", Message: "start_year must be a number"})
		} else {
			filter.StartYear = validator.Atoi(r.StartYear)
		}
	}
	if filter.Gender != "" && !validator.IsInSlice(filter.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be M or F"})
	}

	if len(errs) > 0 {
		return ListFilter{}, errs
	}
	return filter, nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	Surname        string  `json:"surname"`
	FullName       string  `json:"full_name"`
	BirthDate      *string `json:"birth_date,omitempty"`
	IdentityNumber string  `json:"identity_number"`
	Province       string  `json:"province"`
	Naturality     string  `json:"naturality"`
	Residence      string  `json:"residence"`
	Gender         string  `json:"gender"`
	StartDate      *string `json:"start_date,omitempty"`
	StartYear      int     `json:"start_year"`
	Sector         string  `json:"sector"`
	Department     string  `json:"department"`
	Specialty      string  `json:"specialty"`
	Category       string  `json:"category"`
	NUIT           string  `json:"nuit"`
	Career         string  `json:"career"`
	AgeBand        string  `json:"age_band"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// NewEmployeeResponse maps emp to its wire form. Dates use YYYY-MM-DD.
func NewEmployeeResponse(emp Employee) EmployeeResponse {
	formatDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("2006-01-02")
		return &s
	}
	return EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		Surname:        emp.Surname,
		FullName:       emp.FullName(),
		BirthDate:      formatDate(emp.BirthDate),
		IdentityNumber: emp.IdentityNumber,
		Province:       emp.Province,
		Naturality:     emp.Naturality,
		Residence:      emp.Residence,
		Gender:         string(emp.Gender),
		StartDate:      formatDate(emp.StartDate),
		StartYear:      emp.StartYear,
		Sector:         emp.Sector,
		Department:     emp.Department,
		Specialty:      emp.Specialty,
		Category:       emp.Category,
		NUIT:           emp.NUIT,
		Career:         emp.Career,
		AgeBand:        emp.AgeBand,
		Status:         string(emp.Status),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      emp.UpdatedAt.Format(time.RFC3339),
	}
}

type SectorCountResponse struct {
	Sector string `json:"sector"`
	Total  int64  `json:"total"`
}
