// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql/driver"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/turtle-records/auth"
	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
	"github.com/danielhkuo/turtle-records/testutil"
)

// hashOf matches a bcrypt hash of password that is not the password itself.
type hashOf string

func (h hashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok || s == string(h) {
		return false
	}
	return auth.CheckPassword(s, string(h)) == nil
}

func storedUser(t *testing.T, password string, active bool) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		ID:           3,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.org",
		PasswordHash: hash,
		Role:         models.RoleVolunteer,
		IsActive:     active,
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func userRowWithHash(u *models.User) []store.Field {
	return append(store.UserFields(u), store.Field{Name: "password_hash", Ptr: &u.PasswordHash})
}

func TestRegister(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	stored := storedUser(t, "s3cret", true)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ada", "Lovelace", "ada@example.org", hashOf("s3cret"), models.RoleVolunteer).
		WillReturnRows(testutil.MockRows(store.UserFields(&stored)))

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
		Password:  "s3cret",
	}, nil)
	w := serve(h.Register, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	requireNoPasswordLeak(t, w)

	var resp models.UserResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, models.RoleVolunteer, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.NotEmpty(t, resp.Message)
}

func TestRegister_KeepsGivenRole(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	stored := storedUser(t, "s3cret", true)
	stored.Role = "coordinator"
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "coordinator").
		WillReturnRows(testutil.MockRows(store.UserFields(&stored)))

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", Password: "s3cret", Role: "coordinator",
	}, nil)
	w := serve(h.Register, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr string
	}{
		{"missing first name", models.RegisterRequest{LastName: "L", Email: "a@b.c", Password: "p"}, "first_name is required"},
		{"missing last name", models.RegisterRequest{FirstName: "F", Email: "a@b.c", Password: "p"}, "last_name is required"},
		{"missing email", models.RegisterRequest{FirstName: "F", LastName: "L", Password: "p"}, "email is required"},
		{"missing password", models.RegisterRequest{FirstName: "F", LastName: "L", Email: "a@b.c"}, "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _ := testutil.NewMockDB(t)
			h := NewUserHandler(conn, testutil.GetTestConfig())

			w := serve(h.Register, testutil.MakeRequest("POST", "/api/users/register", tt.req, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, tt.wantErr, errorBody(t, w))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	conn, _ := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	w := serve(h.Register, rawRequest("POST", "/api/users/register", `{"email":`))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Invalid JSON", errorBody(t, w))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: db.UserEmailKey})

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", Password: "s3cret",
	}, nil)
	w := serve(h.Register, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Email already registered", errorBody(t, w))
}

func TestRegister_DatabaseFailure(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("connection reset by peer"))

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", Password: "s3cret",
	}, nil)
	w := serve(h.Register, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", errorBody(t, w))
}

func TestRegister_PasswordTooLong(t *testing.T) {
	conn, _ := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", Password: strings.Repeat("p", 80),
	}, nil)
	w := serve(h.Register, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "password must be at most 72 bytes", errorBody(t, w))
}

func TestLogin(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	stored := storedUser(t, "s3cret", true)
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ada@example.org").
		WillReturnRows(testutil.MockRows(userRowWithHash(&stored)))

	req := testutil.MakeRequest("POST", "/api/users/login", models.LoginRequest{
		Email: "ada@example.org", Password: "s3cret",
	}, nil)
	w := serve(h.Login, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	requireNoPasswordLeak(t, w)

	var resp models.UserResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "ada@example.org", resp.User.Email)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	var shape models.User
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("nobody@example.org").
		WillReturnRows(testutil.NoRows(userRowWithHash(&shape)))

	stored := storedUser(t, "s3cret", true)
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ada@example.org").
		WillReturnRows(testutil.MockRows(userRowWithHash(&stored)))

	unknown := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
		models.LoginRequest{Email: "nobody@example.org", Password: "s3cret"}, nil))
	wrong := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
		models.LoginRequest{Email: "ada@example.org", Password: "guess"}, nil))

	testutil.AssertStatus(t, unknown, http.StatusUnauthorized)
	testutil.AssertStatus(t, wrong, http.StatusUnauthorized)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, "Invalid email or password", errorBody(t, wrong))
}

// An unknown email still pays for a bcrypt comparison at the configured cost.
func TestLogin_UnknownEmailTakesHashTime(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	cfg := testutil.GetTestConfig()
	cfg.BcryptCost = 10
	h := NewUserHandler(conn, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), cfg.BcryptCost)
	require.NoError(t, err)
	start := time.Now()
	_ = bcrypt.CompareHashAndPassword(hash, []byte("guess"))
	compareTime := time.Since(start)

	var shape models.User
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WillReturnRows(testutil.NoRows(userRowWithHash(&shape)))

	start = time.Now()
	w := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
		models.LoginRequest{Email: "nobody@example.org", Password: "guess"}, nil))
	elapsed := time.Since(start)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.GreaterOrEqual(t, elapsed, compareTime/2,
		"unknown email answered in %v, a bcrypt comparison takes %v", elapsed, compareTime)
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	stored := storedUser(t, "s3cret", true)
	stored.PasswordHash = "not-a-bcrypt-hash"
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WillReturnRows(testutil.MockRows(userRowWithHash(&stored)))

	w := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
		models.LoginRequest{Email: "ada@example.org", Password: "s3cret"}, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", errorBody(t, w))
}

func TestLogin_InactiveAccount(t *testing.T) {
	t.Run("right password is forbidden", func(t *testing.T) {
		conn, mock := testutil.NewMockDB(t)
		h := NewUserHandler(conn, testutil.GetTestConfig())

		stored := storedUser(t, "s3cret", false)
		mock.ExpectQuery(`SELECT .* FROM users`).WillReturnRows(testutil.MockRows(userRowWithHash(&stored)))

		w := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
			models.LoginRequest{Email: "ada@example.org", Password: "s3cret"}, nil))

		testutil.AssertStatus(t, w, http.StatusForbidden)
		assert.Equal(t, "Account is inactive", errorBody(t, w))
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		conn, mock := testutil.NewMockDB(t)
		h := NewUserHandler(conn, testutil.GetTestConfig())

		stored := storedUser(t, "s3cret", false)
		mock.ExpectQuery(`SELECT .* FROM users`).WillReturnRows(testutil.MockRows(userRowWithHash(&stored)))

		w := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
			models.LoginRequest{Email: "ada@example.org", Password: "guess"}, nil))

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestLogin_MissingFields(t *testing.T) {
	conn, _ := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	w := serve(h.Login, testutil.MakeRequest("POST", "/api/users/login",
		models.LoginRequest{Email: "ada@example.org"}, nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "password is required", errorBody(t, w))
}

func TestListUsers(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	first, second := storedUser(t, "a", true), storedUser(t, "b", true)
	first.ID, second.ID = 1, 2
	second.Email = "grace@example.org"
	mock.ExpectQuery(`SELECT .* FROM users ORDER BY id ASC`).
		WillReturnRows(testutil.MockRows(store.UserFields(&first), store.UserFields(&second)))

	w := serve(h.List, testutil.MakeRequest("GET", "/api/users", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	requireNoPasswordLeak(t, w)

	var resp models.UsersResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, int64(1), resp.Users[0].ID)
	assert.Equal(t, "grace@example.org", resp.Users[1].Email)
}
