package apperror

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command, type help to list commands")
	ErrUnknownPlayer  = errors.New("player must be 1 or 2")
	ErrInvalidCell    = errors.New("cell must be a number from 0 to 8")
)
