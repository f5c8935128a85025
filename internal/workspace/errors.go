package workspace

import "errors"

var (
	ErrMetadata = errors.New("workspace metadata resolution failed")
)
