package backend

import "errors"

var (
	ErrUpstream           = errors.New("backend: upstream request failed")
	ErrUnauthorized       = errors.New("backend: unauthorized")
	ErrNotFound           = errors.New("backend: resource not found")
	ErrRejected           = errors.New("backend: request rejected")
	ErrInvalidCredentials = errors.New("backend: invalid credentials")
	ErrInvalidFixtures    = errors.New("backend: invalid fixtures file")
)
