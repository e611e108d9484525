// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
)

// UserFields lists the public user columns. password_hash is not among them.
func UserFields(u *models.User) []Field {
	return []Field{
		{"id", &u.ID},
		{"first_name", &u.FirstName},
		{"last_name", &u.LastName},
		{"email", &u.Email},
		{"role", &u.Role},
		{"is_email_verified", &u.IsEmailVerified},
		{"is_active", &u.IsActive},
		{"created_at", &u.CreatedAt},
		{"updated_at", &u.UpdatedAt},
	}
}

// CreateUser inserts u and fills in the generated columns.
// u.PasswordHash must already be hashed.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	ins := []Field{
		{"first_name", &u.FirstName},
		{"last_name", &u.LastName},
		{"email", &u.Email},
		{"password_hash", &u.PasswordHash},
		{"role", &u.Role},
	}
	query := fmt.Sprintf(`INSERT INTO users (%s) VALUES (%s) RETURNING %s`,
		columns(ins), placeholders(1, len(ins)), columns(UserFields(u)))

	err := s.db.QueryRowContext(ctx, query, pointers(ins)...).Scan(pointers(UserFields(u))...)
	if db.IsUniqueViolation(err, db.UserEmailKey) {
		return apperr.Conflict("Email already registered")
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindUserByEmail returns the user including its password hash.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	fields := append(UserFields(&u), Field{"password_hash", &u.PasswordHash})
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, columns(fields))

	err := s.db.QueryRowContext(ctx, query, email).Scan(pointers(fields)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every user in ascending id order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var shape models.User
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY id ASC`, columns(UserFields(&shape)))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(pointers(UserFields(&u))...); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}
