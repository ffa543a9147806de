package domain

import "errors"

var (
	ErrCatNotFound   = errors.New("cat not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrUpstreamFetch = errors.New("error while fetching")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidInput  = errors.New("invalid input")
)
