package catalog

import "errors"

var (
	// ErrUnknownGraph is returned by Lookup when no fixture has the given name.
	ErrUnknownGraph = errors.New("catalog: unknown graph")

	// ErrInvalidCatalog reports a malformed catalog document.
	ErrInvalidCatalog = errors.New("catalog: invalid document")
)
