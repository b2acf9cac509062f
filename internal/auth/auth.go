// Package auth implements the mock authentication flow: any credential pair
// is accepted when the remote API cannot vouch for it, and the resulting
// session token lives in the OS keychain.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's secrets in the OS keychain.
const KeyringService = "jobdeck"

// MintToken returns a fresh random session token.
func MintToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// keychain account per user, so switching accounts does not clobber tokens
func account(email string) string {
	return "jobdeck:session:" + strings.ToLower(strings.TrimSpace(email))
}

// StoreToken keeps the session token in the keychain.
func StoreToken(email, token string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account(email), token)
}

// LoadToken returns the stored token for the user, or an error when none is
// set.
func LoadToken(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("email is empty")
	}
	tok, err := keyring.Get(KeyringService, account(email))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tok) == "" {
		return "", errors.New("stored token is empty")
	}
	return tok, nil
}

// DeleteToken removes the user's token from the keychain.
func DeleteToken(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	return keyring.Delete(KeyringService, account(email))
}
