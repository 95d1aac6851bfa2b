package employee

import "time"

type Employee struct {
	ID             string
	FirstName      string
	Surname        string
	BirthDate      *time.Time
	IdentityNumber string
	Province       string
	Naturality     string
	Residence      string
	Gender         Gender
	StartDate      *time.Time
	StartYear      int
	Sector         string
	Department     string
	Specialty      string
	Category       string
	NUIT           string
	Career         string
	AgeBand        string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first name and surname the way the hospital registry prints them.
func (e Employee) FullName() string {
	if e.Surname == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.Surname
}

// ApplyTransition moves the employee to target if the transition table allows it.
// On failure the employee is left untouched. Persisting is the caller's job.
func (e *Employee) ApplyTransition(target Status) error {
	if !IsValidTransition(e.Status, target) {
		return &InvalidTransitionError{From: e.Status, To: target}
	}
	e.Status = target
	return nil
}

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// ListFilter narrows ListEmployees. Zero values mean "no constraint".
type ListFilter struct {
	Statuses   []Status
	Search     string
	Sector     string
	Department string
	Province   string
	Naturality string
	Gender     string
	StartYear  int
}

// SectorCount is a row of the per-sector head count.
type SectorCount struct {
	Sector string
	Total  int64
}
