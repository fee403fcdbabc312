package services

import (
	"crypto/subtle"
	"errors"
	"strings"
)

type Auth struct {
	adminWord string
}

func NewAuth(adminWord string) *Auth {
	return &Auth{adminWord: adminWord}
}

// Signin - admin login, the only kind of user the store has
func (a *Auth) Signin(name, word string) error {
	if strings.TrimSpace(name) == "" {
		return ErrIncorrectName
	}
	// an unset admin word locks every write route
	if a.adminWord == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(word), []byte(a.adminWord)) != 1 {
		return ErrUnauthorized
	}

	return nil
}

var ErrIncorrectName = errors.New("incorrect name")
var ErrUnauthorized = errors.New("unauthorized")
