package catalog

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrMalformedJSON means the payload is not a JSON object.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrMissingField means a field read as required is absent or has the wrong shape.
	ErrMissingField = errors.New("missing required field")
	ErrBadDate      = errors.New("unparsable date")
)
