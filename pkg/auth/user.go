// Package auth manages planner accounts and the current login session.
package auth

import "tableflip.dev/studyplan/pkg/planner"

// User is a stored account record. PasswordHash is a bcrypt hash; the clear
// password is never persisted.
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	StudyLevel   string            `json:"studyLevel,omitempty"`
	PasswordHash string            `json:"passwordHash"`
	CreatedAt    planner.Timestamp `json:"createdAt"`
}

// Identity is the logged-in view of a user, stripped of credentials. It is
// what gets persisted as the current session.
type Identity struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	StudyLevel string            `json:"studyLevel,omitempty"`
	LoginTime  planner.Timestamp `json:"loginTime"`
	Remember   bool              `json:"remember"`
}

// FullName joins the identity's first and last names.
func (i *Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}
