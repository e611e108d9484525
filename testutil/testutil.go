// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/turtle-records/cliparse"
	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
)

// TestDBURLEnv names the variable holding the integration database URL
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB connects to the integration database and recreates the schema.
// The test is skipped when TEST_DATABASE_URL is unset or unreachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(TestDBURLEnv)
	if url == "" {
		t.Skipf("%s not set; skipping integration test", TestDBURLEnv)
	}

	conn, err := sql.Open("postgres", url)
	if err != nil {
		t.Skipf("Failed to open test database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		t.Skipf("Test database unreachable: %v", err)
	}

	// Clean up tables before each test
	if err := db.DropSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewMockDB returns a sqlmock-backed database whose expectations are
// verified when the test ends.
func NewMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	return finishMock(t, conn, mock, err)
}

// NewPingMockDB is NewMockDB with pings treated as expectations.
func NewPingMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	return finishMock(t, conn, mock, err)
}

func finishMock(t *testing.T, conn *sql.DB, mock sqlmock.Sqlmock, err error) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet database expectations: %v", err)
		}
		conn.Close()
	})

	return conn, mock
}

// MockRows builds sqlmock result rows from store column bindings. Each record
// is one row; nil pointers become NULL.
func MockRows(records ...[]store.Field) *sqlmock.Rows {
	names := make([]string, len(records[0]))
	for i, f := range records[0] {
		names[i] = f.Name
	}

	rows := sqlmock.NewRows(names)
	for _, fields := range records {
		values := make([]driver.Value, len(fields))
		for i, f := range fields {
			v := reflect.ValueOf(f.Ptr).Elem()
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					continue
				}
				v = v.Elem()
			}
			values[i] = v.Interface()
		}
		rows.AddRow(values...)
	}
	return rows
}

// NoRows returns an empty result with the columns of fields
func NoRows(fields []store.Field) *sqlmock.Rows {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return sqlmock.NewRows(names)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5001,
		DatabaseURL:  os.Getenv(TestDBURLEnv),
		BasePath:     cliparse.DefaultBasePath,
		BcryptCost:   bcrypt.MinCost,
		MaxOpenConns: cliparse.DefaultMaxOpenConns,
	}
}

// CreateTestTurtle inserts a turtle with a full set of measurements and
// returns its ID
func CreateTestTurtle(t *testing.T, conn *sql.DB, species string) int64 {
	t.Helper()

	turtle := models.Turtle{
		Species:         species,
		Sex:             models.SexUnknown,
		HealthCondition: "healthy",
		Morphometrics: models.Morphometrics{
			SCLMax: 90, SCLMin: 88, SCW: 70,
			CCLMax: 95, CCLMin: 93, CCW: 85,
			TailExtension: 4, VentToTailTip: 6, TotalTailLength: 20,
		},
	}
	if err := store.New(conn).CreateTurtle(context.Background(), &turtle); err != nil {
		t.Fatalf("Failed to create test turtle: %v", err)
	}

	return turtle.ID
}

// CreateTestNest inserts an incubating nest and returns its ID
func CreateTestNest(t *testing.T, conn *sql.DB, code string, dateFound time.Time) int64 {
	t.Helper()

	eggs := 100
	nest := models.Nest{
		NestCode:       code,
		TotalNumEggs:   &eggs,
		CurrentNumEggs: &eggs,
		DepthTopEggH:   30,
		DistanceToSeaS: 15,
		GPSLat:         -8.65,
		GPSLong:        115.13,
		Status:         models.NestStatusIncubating,
		DateFound:      dateFound,
		Beach:          "North Beach",
	}
	if err := store.New(conn).CreateNest(context.Background(), &nest); err != nil {
		t.Fatalf("Failed to create test nest: %v", err)
	}

	return nest.ID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
