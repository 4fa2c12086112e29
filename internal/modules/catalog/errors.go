package catalog

import "errors"

var (
	ErrNotFound       = errors.New("sitter not found")
	ErrInvalidService = errors.New("service not offered by sitter")
)
