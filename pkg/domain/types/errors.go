package types

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidTransition is returned when a status change is not part of the
// declared transition graph. It always indicates a caller bug and is never
// retried.
var ErrInvalidTransition = goerr.New("invalid status transition")
