package domain

import "errors"

var (
	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("authorization token not found")
	ErrTokenInvalid  = errors.New("authorization token is invalid")
)
