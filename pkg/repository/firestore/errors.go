package firestore

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the firestore backend
var (
	ErrNotFound  = goerr.New("not found")
	ErrDuplicate = goerr.New("duplicate")
)
