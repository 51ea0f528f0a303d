package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUpstream marks a failed call to the language model.
	ErrUpstream = errors.New("upstream generation failed")
	// ErrUnparseable marks model output that is not a JSON object.
	ErrUnparseable = errors.New("generation output is not valid json")
	// ErrInvalidShape marks parsed model output missing the expected arrays.
	ErrInvalidShape = errors.New("generation output has invalid structure")
)
