package gateway

import "errors"

var (
	// ErrNotFound means the referenced entity is missing, either from the
	// backend (404) or from the cached collection at action time.
	ErrNotFound = errors.New("entity not found")

	// ErrRemote means the network round trip or the backend failed. The
	// cache is left untouched; the caller decides whether to retry.
	ErrRemote = errors.New("remote request failed")
)
