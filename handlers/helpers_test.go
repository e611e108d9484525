// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/testutil"
)

var fixedTime = time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// serve runs h against req, setting the given path values first.
func serve(h http.HandlerFunc, req *http.Request, pathValues ...string) *httptest.ResponseRecorder {
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func rawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.Error
}

// argsWith returns n wildcard arguments with the given positions pinned.
func argsWith(n int, pinned map[int]driver.Value) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		if v, ok := pinned[i]; ok {
			args[i] = v
			continue
		}
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func measurementsInput() models.MorphometricsInput {
	return models.MorphometricsInput{
		SCLMax: ptr(92.1), SCLMin: ptr(90.4), SCW: ptr(70.2),
		CCLMax: ptr(98.5), CCLMin: ptr(96.1), CCW: ptr(88.7),
		TailExtension: ptr(4.1), VentToTailTip: ptr(6.3), TotalTailLength: ptr(21.9),
	}
}

func storedTurtle(id int64) models.Turtle {
	return models.Turtle{
		ID:              id,
		Name:            ptr("Shelly"),
		Species:         "Chelonia mydas",
		Sex:             models.SexFemale,
		HealthCondition: "healthy",
		Morphometrics:   measurementsInput().Values(),
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
	}
}

func storedNest(id int64, code string) models.Nest {
	return models.Nest{
		ID:             id,
		NestCode:       code,
		TotalNumEggs:   ptr(100),
		CurrentNumEggs: ptr(100),
		DepthTopEggH:   30,
		DistanceToSeaS: 15,
		GPSLat:         -8.65,
		GPSLong:        115.13,
		Status:         models.NestStatusIncubating,
		DateFound:      time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Beach:          "North Beach",
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
	}
}

// requireNoPasswordLeak fails if the response mentions a password or hash.
func requireNoPasswordLeak(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "$2a$")
}
