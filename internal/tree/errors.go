package tree

import "errors"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errConfigInvalid      = errors.New("invalid config file")
	errTreePathEmpty      = errors.New("tree_path cannot be empty")
	errTreeInvalid        = errors.New("invalid tree file")

	// ErrPersonNotFound is returned by lookups for an id with no match.
	ErrPersonNotFound = errors.New("person not found")
)
