package domain

import "errors"

// Failure kinds shared by the calculators and the service layer. Services
// wrap these with context; the API layer maps them onto HTTP statuses.
var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidState         = errors.New("operation not allowed in current state")
	ErrInvalidApplication   = errors.New("loan amount or term outside the allowed values")
	ErrNotAllowed           = errors.New("operation forbidden by policy")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidPlan          = errors.New("unknown funeral plan")
	ErrMissingFamilyDetails = errors.New("family details required for this plan")
	ErrNotFound             = errors.New("record not found")
)
