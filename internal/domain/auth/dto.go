package auth

import (
	"unicode/utf8"

	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if utf8.RuneCountInString(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 50 characters",
		})
	}

	// Contact
	if validator.IsEmpty(r.Contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "contact is required",
		})
	} else if !validator.IsValidContact(r.Contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "contact must be a 9 digit mobile number starting with 82, 83, 84, 85, 86 or 87",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password must match password",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "contact is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	TokenType            string `json:"token_type"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
