package domain

// Principal identifies the caller of a single request. It is derived from the
// bearer token and handed to every service call as a plain value.
type Principal struct {
	ID    string
	Role  string
	Token string
}

// Anonymous reports whether the request carried no usable identity.
func (p Principal) Anonymous() bool {
	return p.ID == "" || p.Token == ""
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal is the owner of the cat.
func (p Principal) Owns(c *Cat) bool {
	return c != nil && p.ID != "" && c.Owner.ID() == p.ID
}
