package auth

import "github.com/Domenick1991/goglobe/internal/domain"

type Principal struct {
	UserID int64
	Role   string
	Email  string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == domain.RoleAdmin
}

// CanAccessClient is the same-user policy: admins see everything,
// clients only records that belong to them.
func (p *Principal) CanAccessClient(clientID int64) bool {
	if p == nil {
		return false
	}
	return p.IsAdmin() || p.UserID == clientID
}
