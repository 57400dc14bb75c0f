package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value already exists")
	ErrValueNotExisted = errors.New("value does not exist")
)
