package model

import "github.com/openarchief/vernietiging/pkg/domain/types"

// Role describes what a user is allowed to do in the destruction workflow.
// Role administration happens outside this component; the flags are consumed
// as-is.
type Role struct {
	Type                 types.RoleType
	CanStartDestruction  bool
	CanReviewDestruction bool
}

// User is a reference to an account managed elsewhere
type User struct {
	ID    types.UserID
	Name  string
	Email string
	Role  Role
}
