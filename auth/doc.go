// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing for user accounts.

# Hashing

Passwords are hashed with bcrypt, which embeds a random salt in every hash:

	hash, err := auth.HashPassword(password, cfg.BcryptCost)

Only the hash is stored. The plaintext never leaves the request handler.

# Verification

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		// err == auth.ErrInvalidPassword
	}

Every mismatch, including a stored value that is not a bcrypt hash, returns
ErrInvalidPassword so callers cannot tell the cases apart.
*/
package auth
