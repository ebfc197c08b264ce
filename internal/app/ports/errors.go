package ports

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")

	ErrUnauthorized          = errors.New("unauthorized")
	ErrBadImplementation     = errors.New("bad implementation")
	ErrInvalidStrategyConfig = errors.New("invalid strategy config")
	ErrExpiredToken          = errors.New("token is expired")

	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
