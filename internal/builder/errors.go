package builder

import "errors"

var (
	ErrBuild = errors.New("guest build failed")
)
