package wallet

import "errors"

// ErrNotFound is returned when the requested wallet does not exist.
var ErrNotFound = errors.New("wallet not found")
