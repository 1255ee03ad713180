package entities

import "time"

const (
	RoleAdmin       = "admin"
	RoleComprador   = "comprador"
	RoleSolicitante = "solicitante"
)

// User is the credential record managed by the password-reset flow.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
}
