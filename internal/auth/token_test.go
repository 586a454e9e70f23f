package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wayfarer/tracker/internal/constants"
)

var testSecret = []byte("test-secret")

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1", constants.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.UserID() != "user-1" || !claims.IsAdmin() || claims.Source() != "JWT" {
		t.Errorf("Unexpected claims %+v", claims)
	}
}

func TestParseToken_Rejections(t *testing.T) {
	expired, _ := IssueToken(testSecret, "user-1", constants.RoleUser, -time.Minute)
	if _, err := ParseToken(testSecret, expired); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected expired error, got %v", err)
	}

	other, _ := IssueToken([]byte("other"), "user-1", constants.RoleUser, time.Hour)
	if _, err := ParseToken(testSecret, other); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("Expected signature error, got %v", err)
	}

	noSubject, _ := IssueToken(testSecret, "", constants.RoleUser, time.Hour)
	if _, err := ParseToken(testSecret, noSubject); !errors.Is(err, ErrMissingSubject) {
		t.Errorf("Expected missing subject error, got %v", err)
	}

	if _, err := ParseToken(nil, "x"); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Expected missing secret error, got %v", err)
	}
}

func TestJWTClaims_DefaultRole(t *testing.T) {
	c := &JWTClaims{}
	if c.Role() != "user" || c.IsAdmin() {
		t.Errorf("Expected plain user role, got %s", c.Role())
	}
}
