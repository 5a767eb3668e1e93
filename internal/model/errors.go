package model

import "errors"

var (
	ErrEmptyName               = errors.New("client name is required")
	ErrInvalidTotalAmount      = errors.New("please enter a valid total amount")
	ErrInvalidPaidAmount       = errors.New("please enter a valid paid amount")
	ErrPaidExceedsTotal        = errors.New("paid amount cannot exceed total amount")
	ErrInvalidSubscriptionType = errors.New("subscription type must be monthly or one-time")
	ErrInvalidDate             = errors.New("dates must look like 2006-01-02")
	ErrInvalidAdjustmentAmount = errors.New("please enter a valid positive number")
	ErrInvalidDirection        = errors.New("direction must be increase or decrease")
	ErrEmptyReason             = errors.New("reason is required")
)

// ValidationError names the offending field. It unwraps to one of the
// sentinels above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err came from request validation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
