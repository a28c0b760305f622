package content

import "errors"

// ErrInvalidBundle wraps every schema or reference failure found while loading content.
var ErrInvalidBundle = errors.New("invalid content bundle")
