package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"wayfarer/tracker/internal/constants"
)

// UserClaims is what handlers see of an authenticated caller.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
	IsAdmin() bool
}

// JWTClaims are the claims of an HS256 access token. The subject is the user id.
type JWTClaims struct {
	RoleValue constants.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) UserID() string { return c.Subject }
func (c *JWTClaims) Role() string {
	if c.RoleValue == "" {
		return constants.RoleUser.String()
	}
	return c.RoleValue.String()
}
func (c *JWTClaims) Source() string { return "JWT" }
func (c *JWTClaims) IsAdmin() bool  { return c.RoleValue == constants.RoleAdmin }
