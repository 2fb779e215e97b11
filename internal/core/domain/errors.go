package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTimeBlockNotFound = errors.New("time block not found")
	ErrInvalidInterval   = errors.New("time block must end after it starts")
	ErrTimeBlockConflict = errors.New("time block overlaps an existing block")
	ErrInvalidRange      = errors.New("invalid date range")

	// Remote store failures. Anything else coming out of a store is treated
	// as a transient transport failure.
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response body")
	ErrUpstream          = errors.New("upstream store error")
)
