package domain

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid moderation status")
	ErrInvalidSnapshot = errors.New("invalid snapshot document")
)
