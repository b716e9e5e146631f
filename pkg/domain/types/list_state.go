package types

// ListState is the derived display state of a destruction list. It is
// computed from the lifecycle status, the current assignee and the latest
// review; it is never stored.
type ListState string

const (
	ListStateInProgress       ListState = "in_progress"
	ListStateChangesRequested ListState = "changes_requested"
	ListStateRejected         ListState = "rejected"
	ListStateApproved         ListState = "approved"
	ListStateFinished         ListState = "finished"
)

// String returns the string representation of the list state
func (s ListState) String() string {
	return string(s)
}
