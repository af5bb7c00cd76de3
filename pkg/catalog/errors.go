package catalog

import "errors"

var (
	ErrInvalidDocument = errors.New("catalog: invalid supplier document")
)
