package auth

const (
	RoleAdministrator = "Administrator"
	RoleGuest         = "Guest"
)

func IsAdmin(roles []string) bool {
	for _, r := range roles {
		if r == RoleAdministrator {
			return true
		}
	}
	return false
}

// CanAccessOwnResource allows administrators everywhere and everyone on their
// own record.
func CanAccessOwnResource(callerUID, targetUID string, callerIsAdmin bool) bool {
	return callerIsAdmin || callerUID == targetUID
}

// CanGrantAdminRole blocks any request that would put a user into the
// Administrator role unless the caller already holds it. Checked before the
// ownership rule is allowed to short-circuit a mutation.
func CanGrantAdminRole(requestedRoles []string, callerIsAdmin bool) bool {
	if callerIsAdmin {
		return true
	}
	for _, r := range requestedRoles {
		if r == RoleAdministrator {
			return false
		}
	}
	return true
}
