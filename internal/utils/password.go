package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword peppers the plain-text password with an HMAC-SHA256 keyed by
// pepper and bcrypt-hashes the hex digest. The digest has a fixed length of
// 64 bytes, which keeps every password inside bcrypt's 72 byte input limit.
func HashPassword(password, pepper string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(peppered(password, pepper)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash
// produced by HashPassword with the same pepper.
func ComparePassword(hash, password, pepper string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(peppered(password, pepper)))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error comparing password: %w", err)
	}

	return true, nil
}

// peppered returns the hex HMAC-SHA256 of password keyed by pepper.
func peppered(password, pepper string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
