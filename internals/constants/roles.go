package constants

// Role names carried in the JWT and checked by the auth helpers.
const (
	RoleSchoolAdmin = "school_admin"
	RoleSchoolStaff = "school_staff"
	RoleParent      = "parent"
)

// Messages returned by the role guards.
const (
	MsgAdminRoleRequired = "school_admin role required"
	MsgStaffRoleRequired = "staff role required"
	MsgAccountInactive   = "account is inactive"
)
