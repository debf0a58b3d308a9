package custom_errors

import "errors"

var (
	ErrConflict       = errors.New("record already exists")
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
)
