package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidContent marks CMS content that could not be decoded into its typed shape.
	ErrInvalidContent = errors.New("invalid content")
)
