package auth

// CallerIdentity is the authenticated principal attached to a request by the
// auth middleware. It is a plain value threaded through the call chain, never
// ambient state, and is not the persisted User entity.
type CallerIdentity struct {
	UID   string
	Email string
	Roles []string
}

func (id *CallerIdentity) IsAdmin() bool {
	if id == nil {
		return false
	}
	return IsAdmin(id.Roles)
}
