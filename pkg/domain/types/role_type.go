package types

// RoleType classifies the function of a user in the destruction workflow
type RoleType string

const (
	RoleTypeRecordManager RoleType = "record_manager"
	RoleTypeProcessOwner  RoleType = "process_owner"
	RoleTypeArchivist     RoleType = "archivist"
	RoleTypeFunctional    RoleType = "functional_admin"
)

// IsValid checks if the role type is valid
func (t RoleType) IsValid() bool {
	switch t {
	case RoleTypeRecordManager,
		RoleTypeProcessOwner,
		RoleTypeArchivist,
		RoleTypeFunctional:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role type
func (t RoleType) String() string {
	return string(t)
}
