// file: internals/helpers/auth/profile.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolfee_backend/internals/constants"
	helper "schoolfee_backend/internals/helpers"
)

/* ============================================
   Locals keys (set by the JWT middleware)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocRole     = "role"      // string
	LocSchoolID = "school_id" // string UUID
	LocIsActive = "is_active" // bool
)

/* ============================================
   Roles
   ============================================ */

const (
	RoleSchoolAdmin = constants.RoleSchoolAdmin
	RoleSchoolStaff = constants.RoleSchoolStaff
	RoleParent      = constants.RoleParent
)

// Profile is the authenticated identity this core consumes.
type Profile struct {
	UserID   uuid.UUID
	Role     string
	SchoolID uuid.UUID
	IsActive bool
}

// GetProfile reads the hydrated locals. Missing/invalid claims read as 401.
func GetProfile(c *fiber.Ctx) (Profile, error) {
	var p Profile

	uid, err := localsUUID(c, LocUserID)
	if err != nil {
		return p, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	sid, err := localsUUID(c, LocSchoolID)
	if err != nil {
		return p, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	role, _ := c.Locals(LocRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return p, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	active := true
	if v, ok := c.Locals(LocIsActive).(bool); ok {
		active = v
	}

	p.UserID = uid
	p.SchoolID = sid
	p.Role = role
	p.IsActive = active
	return p, nil
}

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(strings.TrimSpace(v))
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
}

/* ============================================
   Guards
   ============================================ */

// EnsureSchoolStaff: caller must be an active admin or staff of schoolID.
// A foreign school_id reads as not-found so tenant existence never leaks.
func EnsureSchoolStaff(c *fiber.Ctx, schoolID uuid.UUID) (Profile, error) {
	p, err := GetProfile(c)
	if err != nil {
		return p, err
	}
	if !p.IsActive {
		return p, helper.NewPermissionError(constants.MsgAccountInactive)
	}
	if p.Role != RoleSchoolAdmin && p.Role != RoleSchoolStaff {
		return p, helper.NewPermissionError(constants.MsgStaffRoleRequired)
	}
	if p.SchoolID != schoolID {
		return p, helper.NewNotFoundError("school")
	}
	return p, nil
}

// EnsureSchoolAdmin: caller must be an active school_admin of schoolID.
func EnsureSchoolAdmin(c *fiber.Ctx, schoolID uuid.UUID) (Profile, error) {
	p, err := GetProfile(c)
	if err != nil {
		return p, err
	}
	if !p.IsActive {
		return p, helper.NewPermissionError(constants.MsgAccountInactive)
	}
	if p.Role != RoleSchoolAdmin {
		return p, helper.NewPermissionError(constants.MsgAdminRoleRequired)
	}
	if p.SchoolID != schoolID {
		return p, helper.NewNotFoundError("school")
	}
	return p, nil
}
