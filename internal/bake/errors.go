package bake

import "errors"

var (
	ErrFileSystemOperation = errors.New("file system operation failed")
)
