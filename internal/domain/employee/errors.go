package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("invalid employee status")
	ErrIdentityNumberUsed = errors.New("identity number already registered")
	ErrNUITExists         = errors.New("NUIT already registered")
)
