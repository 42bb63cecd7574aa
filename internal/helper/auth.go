package helper

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth holds the single admin account guarding the admin routes.
type AdminAuth struct {
	Username     string
	PasswordHash string
}

func SetupAdminAuth(username, passwordHash string) AdminAuth {
	return AdminAuth{
		Username:     strings.TrimSpace(username),
		PasswordHash: strings.TrimSpace(passwordHash),
	}
}

// Enabled is false when either value is missing; the admin routes are then open.
func (a AdminAuth) Enabled() bool {
	return a.Username != "" && a.PasswordHash != ""
}

func (a AdminAuth) Authorize(username, password string) bool {
	if !a.Enabled() {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) != 1 {
		return false
	}
	return a.VerifyPassword(password, a.PasswordHash) == nil
}

func (a AdminAuth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid username or password")
	}
	return nil
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(plain string, cost int) (string, error) {
	if len(plain) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
