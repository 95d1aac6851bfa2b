package response

import (
	"errors"
	"net/http"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/auth"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/lifecycle"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/user"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var transitionErr *employee.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserContactExists):
		Conflict(w, "Contact already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrIdentityNumberUsed):
		Conflict(w, "Identity number already registered")
	case errors.Is(err, employee.ErrNUITExists):
		Conflict(w, "NUIT already registered")

	// Lifecycle storage failures
	case errors.Is(err, lifecycle.ErrStorageFault):
		InternalServerError(w, "The operation could not be stored and was rolled back")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
