package core

import (
	"errors"
)

var (
	ErrUnsupportedShape = errors.New("unsupported mesh shape")
	ErrNoInputImages    = errors.New("no decodable input images")
)
