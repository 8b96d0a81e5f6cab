package services

import "gatestore-app/models"

// Principal is the authenticated caller as handed over by the auth middleware.
// The services trust the role; token validation already happened upstream.
type Principal struct {
	ID   uint
	Name string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// HasRole reports whether the principal carries one of the given roles.
func (p Principal) HasRole(roles ...string) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// Notifier delivers best-effort messages to users. A nil notifier is valid and
// means notifications are disabled.
type Notifier interface {
	Notify(to, subject, body string)
}

func validDecision(decision string) bool {
	return decision == models.StatusApproved || decision == models.StatusRejected
}
