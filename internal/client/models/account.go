// Package models defines the data shapes shared by the client services:
// accounts and sessions, questionnaire answers, risk categories and portfolios.
package models

// Role is the privilege label of an account.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Account is a user identity. Password holds whatever the active password
// policy stored: the raw password or a derived verifier.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Image    string `json:"image,omitempty"`
}

// Session is the signed-in identity plus its opaque token.
type Session struct {
	User  Account `json:"user"`
	Token string  `json:"token"`
}
