// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/turtle-records/apperr"
)

var ErrInvalidPassword = errors.New("invalid password")

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = apperr.Validation("password must be at most 72 bytes")

// HashPassword returns a salted bcrypt hash of password.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash with a candidate password.
// A mismatch yields ErrInvalidPassword; a malformed stored hash is reported
// as its own error.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}
	if err != nil {
		return fmt.Errorf("failed to check password: %w", err)
	}
	return nil
}

var (
	dummyMu     sync.Mutex
	dummyHashes = map[int][]byte{}
)

// dummyHash returns a hash of a fixed secret at cost, generated once per cost.
func dummyHash(cost int) ([]byte, error) {
	dummyMu.Lock()
	defer dummyMu.Unlock()

	if h, ok := dummyHashes[cost]; ok {
		return h, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte("no such account"), cost)
	if err != nil {
		return nil, err
	}
	dummyHashes[cost] = h
	return h, nil
}

// SimulateCheck does the work of CheckPassword at cost without a stored
// hash, so rejecting an unknown account takes as long as a wrong password.
func SimulateCheck(password string, cost int) {
	h, err := dummyHash(cost)
	if err != nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(h, []byte(password))
}
