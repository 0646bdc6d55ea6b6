package domain

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrAssignmentExhausted = errors.New("no valid group assignment found")
	ErrSchemaValidation    = errors.New("state document failed validation")
	ErrMigrationFailure    = errors.New("state document migration failed")
	ErrStorageIO           = errors.New("state storage failure")
	ErrPermissionDenied    = errors.New("permission denied")
)
