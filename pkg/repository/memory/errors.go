package memory

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the memory backend
var (
	ErrNotFound  = goerr.New("not found")
	ErrDuplicate = goerr.New("duplicate")
)
