package resorts

import "errors"

var (
	ErrUnknownMode   = errors.New("unknown travel mode")
	ErrUnknownBucket = errors.New("unknown difficulty bucket")
	ErrInvalidLimit  = errors.New("invalid time limit")
)
