package models

import "time"

// Admin roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser is the Firestore mirror of a Firebase Auth account that may
// sign in to the admin panel. It is created in a second step after the
// auth account itself; the two records are not linked transactionally.
type AdminUser struct {
	DocID     string    `json:"docId" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	UID       string    `json:"uid" firestore:"uid"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ValidRole reports whether role is one of the accepted admin roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
