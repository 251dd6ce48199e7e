package domain

import "github.com/google/uuid"

// Role represents a user role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role carries admin capability.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Principal is the authenticated identity derived from a verified token.
// It lives only for the duration of one request and is never persisted.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

// CanModify reports whether the principal may mutate a resource owned by
// ownerUsername. Owners may modify their own resources; admins may modify
// anything.
func (p *Principal) CanModify(ownerUsername string) bool {
	if p == nil {
		return false
	}
	return p.Username == ownerUsername || p.Role.IsAdmin()
}

// Order statuses
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)
