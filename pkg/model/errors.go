package model

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrMalformed = errors.New("malformed upstream payload")
)
