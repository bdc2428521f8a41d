package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")

	ErrWindowClosed = fmt.Errorf("%w: window closed", ErrForbidden)
)
