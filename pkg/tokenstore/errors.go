package tokenstore

import "errors"

var (
	ErrNotFound     = errors.New("tokenstore: token not found")
	ErrEmptyKey     = errors.New("tokenstore: empty session key")
	ErrEmptyToken   = errors.New("tokenstore: empty token")
	ErrStoreFailure = errors.New("tokenstore: backend failure")
)
