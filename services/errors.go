// services/errors.go
package services

import "errors"

// Error taxonomy shared by every workflow. Validation errors are always
// raised before any mutation; NotFound and HasChildren are raised after a
// read but still before any write.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrHasChildren      = errors.New("category has subcategories")
	ErrInternal         = errors.New("internal error")
)
