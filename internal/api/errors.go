package api

import "errors"

var (
	// ErrServerUnavailable indicates the tracking server is unreachable.
	ErrServerUnavailable = errors.New("tracking server unavailable")

	// ErrNotFound indicates the referenced entry no longer exists.
	ErrNotFound = errors.New("entry not found")

	// ErrBadRequest indicates the server rejected the request payload.
	ErrBadRequest = errors.New("server rejected request")
)
