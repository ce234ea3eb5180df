package queue

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity = errors.New("queue: invalid capacity")
	ErrFull            = errors.New("queue: full")
	ErrClosed          = errors.New("queue: closed")
)
