package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist in the caller's session.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the request is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExportsDisabled indicates no export directory is configured.
	ErrExportsDisabled = errors.New("export storage disabled")
)
