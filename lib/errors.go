package lib

import "errors"

// Validation errors returned by the Find functions. They are wrapped with
// details about the offending argument; match them with errors.Is.
var (
	ErrInvalidDialect    = errors.New("dialect must implement Parse and a non-empty Separator")
	ErrInvalidInputShape = errors.New("paths must be a slice or array")
	ErrInvalidFieldName  = errors.New("key must be a single string")
	ErrMissingFieldName  = errors.New("paths contain structured values but no key was given")
	ErrInvalidElement    = errors.New("paths elements must be strings or structured values")
	ErrInvalidFieldValue = errors.New("structured value must hold a string under key")
)
