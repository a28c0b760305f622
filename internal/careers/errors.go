package careers

import "errors"

var (
	ErrUnknownType  = errors.New("unknown personality type")
	ErrInvalidCount = errors.New("invalid recommendation count")
)
