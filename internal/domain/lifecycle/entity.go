package lifecycle

import (
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
)

// Kind identifies an event table. Each kind drives exactly one status transition.
type Kind string

const (
	KindVacation   Kind = "vacation"
	KindTransfer   Kind = "transfer"
	KindRetirement Kind = "retirement"
	KindSuspension Kind = "suspension"
	KindDeath      Kind = "death"
)

// TargetStatus returns the status an employee moves to when an event of kind k is recorded.
func (k Kind) TargetStatus() employee.Status {
	switch k {
	case KindVacation:
		return employee.StatusOnLeave
	case KindTransfer:
		return employee.StatusTransferred
	case KindRetirement:
		return employee.StatusRetired
	case KindSuspension:
		return employee.StatusSuspended
	case KindDeath:
		return employee.StatusDeceased
	}
	return ""
}

type VacationRecord struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

type TransferRecord struct {
	ID           string
	EmployeeID   string
	TransferDate time.Time
	Destination  string
	CreatedAt    time.Time
}

type RetirementRecord struct {
	ID             string
	EmployeeID     string
	RetirementDate time.Time
	Age            int
	CreatedAt      time.Time
}

type SuspensionRecord struct {
	ID             string
	EmployeeID     string
	SuspensionDate time.Time
	Reason         string
	CreatedAt      time.Time
}

type DeathRecord struct {
	ID          string
	EmployeeID  string
	DateOfDeath time.Time
	Age         int
	CreatedAt   time.Time
}

// Listing rows carry the employee's full name from the join.
type (
	VacationEntry struct {
		VacationRecord
		EmployeeName string
	}
	TransferEntry struct {
		TransferRecord
		EmployeeName string
	}
	RetirementEntry struct {
		RetirementRecord
		EmployeeName string
	}
	SuspensionEntry struct {
		SuspensionRecord
		EmployeeName string
	}
	DeathEntry struct {
		DeathRecord
		EmployeeName string
	}
)

// History is every event recorded for one employee, oldest first within each kind.
type History struct {
	Vacations   []VacationRecord
	Transfers   []TransferRecord
	Retirements []RetirementRecord
	Suspensions []SuspensionRecord
	Deaths      []DeathRecord
}
