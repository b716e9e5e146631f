package types

// UserID identifies a user. User accounts live outside this component; only
// the identifier is consumed here.
type UserID string

// String returns the string representation of the user ID
func (id UserID) String() string {
	return string(id)
}

// Entity identifiers are sequential per collection, assigned by the
// repository backend.
type (
	ListID     int64
	ItemID     int64
	AssigneeID int64
	ReviewID   int64
	AuditID    int64
)
