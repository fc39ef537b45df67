// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrInvalidToken         = errors.New("invalid token format")
)

// ValidateAdminPassword checks the supplied credential against the
// configured admin password. Both sides are hashed first so the comparison
// takes the same time whatever their lengths. An empty configured password
// never matches.
func ValidateAdminPassword(supplied, configured string) error {
	if configured == "" {
		return ErrInvalidAdminPassword
	}
	got := sha256.Sum256([]byte(supplied))
	want := sha256.Sum256([]byte(configured))
	if !hmac.Equal(got[:], want[:]) {
		return ErrInvalidAdminPassword
	}
	return nil
}

// GenerateVoterToken creates a random secure token for a voter
func GenerateVoterToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateTokenFormat rejects tokens this service will not register:
// empty, oversized, or containing whitespace.
func ValidateTokenFormat(token string) error {
	if token == "" || len(token) > 256 {
		return ErrInvalidToken
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return ErrInvalidToken
	}
	return nil
}
