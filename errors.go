package linearmap

import "errors"

var (
	// ErrInvalidKey is returned when an operation receives a nil key.
	ErrInvalidKey = errors.New("linearmap: invalid key")

	// ErrInvalidCapacity is returned by constructors when capacity is not positive.
	ErrInvalidCapacity = errors.New("linearmap: capacity must be positive")

	// Never returned. Carried by a panic when a probe finds no free slot,
	// which means growth did not happen when it should have.
	errTableFull = errors.New("linearmap: table is full")
)
