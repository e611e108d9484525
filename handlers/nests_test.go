// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql/driver"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
	"github.com/danielhkuo/turtle-records/testutil"
)

func nestRequest(code string) models.NestRequest {
	return models.NestRequest{
		NestCode:       code,
		TotalNumEggs:   ptr(100),
		DepthTopEggH:   ptr(30.0),
		DistanceToSeaS: ptr(15.0),
		GPSLat:         ptr(-8.65),
		GPSLong:        ptr(115.13),
		DateFound:      "2025-05-20",
		Beach:          "North Beach",
	}
}

// Insert argument positions within the nest column list.
const (
	nestArgCode      = 0
	nestArgTotal     = 1
	nestArgCurrent   = 2
	nestArgStatus    = 17
	nestArgRelocated = 18
	nestArgDateFound = 19
	nestArgArchived  = 22
	nestArgCount     = 23
)

func TestCreateNest_Defaults(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewNestHandler(conn)

	stored := storedNest(4, "N-2025-001")
	mock.ExpectQuery(`INSERT INTO turtle_nests`).
		WithArgs(argsWith(nestArgCount, map[int]driver.Value{
			nestArgCode:      "N-2025-001",
			nestArgTotal:     int64(100),
			nestArgCurrent:   int64(100),
			nestArgStatus:    models.NestStatusIncubating,
			nestArgRelocated: false,
			nestArgDateFound: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			nestArgArchived:  false,
		})...).
		WillReturnRows(testutil.MockRows(store.NestFields(&stored)))

	w := serve(h.Create, testutil.MakeRequest("POST", "/api/nests/create", nestRequest("N-2025-001"), nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.NestResponse
	testutil.AssertJSON(t, w, &resp)
	require.NotNil(t, resp.Nest.CurrentNumEggs)
	assert.Equal(t, 100, *resp.Nest.CurrentNumEggs)
	assert.Equal(t, models.NestStatusIncubating, resp.Nest.Status)
}

func TestCreateNest_KeepsExplicitValues(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewNestHandler(conn)

	stored := storedNest(5, "N-2025-002")
	mock.ExpectQuery(`INSERT INTO turtle_nests`).
		WithArgs(argsWith(nestArgCount, map[int]driver.Value{
			nestArgCurrent:   int64(90),
			nestArgStatus:    models.NestStatusHatching,
			nestArgRelocated: true,
		})...).
		WillReturnRows(testutil.MockRows(store.NestFields(&stored)))

	req := nestRequest("N-2025-002")
	req.CurrentNumEggs = ptr(90)
	req.Status = " Hatching"
	req.Relocated = ptr(true)
	w := serve(h.Create, testutil.MakeRequest("POST", "/api/nests/create", req, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestCreateNest_Validation(t *testing.T) {
	noCode := nestRequest("")

	noDepth := nestRequest("N-1")
	noDepth.DepthTopEggH = nil

	noLong := nestRequest("N-1")
	noLong.GPSLong = nil

	noBeach := nestRequest("N-1")
	noBeach.Beach = ""

	badDate := nestRequest("N-1")
	badDate.DateFound = "20/05/2025"

	badStatus := nestRequest("N-1")
	badStatus.Status = "buried"

	tests := []struct {
		name    string
		req     models.NestRequest
		wantErr string
	}{
		{"missing nest code", noCode, "nest_code is required"},
		{"missing depth", noDepth, "depth_top_egg_h is required"},
		{"missing longitude", noLong, "gps_long is required"},
		{"missing beach", noBeach, "beach is required"},
		{"malformed date", badDate, "date_found must be a date (YYYY-MM-DD)"},
		{"unknown status", badStatus, "status must be one of incubating, hatching, hatched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _ := testutil.NewMockDB(t)
			h := NewNestHandler(conn)

			w := serve(h.Create, testutil.MakeRequest("POST", "/api/nests/create", tt.req, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, tt.wantErr, errorBody(t, w))
		})
	}
}

func TestCreateNest_DuplicateCode(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewNestHandler(conn)

	mock.ExpectQuery(`INSERT INTO turtle_nests`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: db.NestCodeKey})

	w := serve(h.Create, testutil.MakeRequest("POST", "/api/nests/create", nestRequest("N-2025-001"), nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Nest code already exists", errorBody(t, w))
}

func TestUpdateNest(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewNestHandler(conn)

	stored := storedNest(4, "N-2025-001")
	stored.Status = models.NestStatusHatched
	mock.ExpectQuery(`UPDATE turtle_nests SET nest_code = \$1, .* WHERE id = \$24`).
		WithArgs(argsWith(nestArgCount+1, map[int]driver.Value{
			nestArgStatus: models.NestStatusHatched,
			nestArgCount:  int64(4),
		})...).
		WillReturnRows(testutil.MockRows(store.NestFields(&stored)))

	req := nestRequest("N-2025-001")
	req.Status = "HATCHED"
	w := serve(h.Update, testutil.MakeRequest("PUT", "/api/nests/4/update", req, nil), "id", "4")

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.NestResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.NestStatusHatched, resp.Nest.Status)
}

func TestUpdateNest_Errors(t *testing.T) {
	var shape models.Nest

	tests := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock)
		wantStatus int
		wantErr    string
	}{
		{
			name: "unknown id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE turtle_nests`).WillReturnRows(testutil.NoRows(store.NestFields(&shape)))
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "Nest not found",
		},
		{
			name: "code taken by another nest",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE turtle_nests`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: db.NestCodeKey})
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Nest code already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := testutil.NewMockDB(t)
			h := NewNestHandler(conn)
			tt.setup(mock)

			w := serve(h.Update, testutil.MakeRequest("PUT", "/api/nests/9/update", nestRequest("N-9"), nil), "id", "9")

			testutil.AssertStatus(t, w, tt.wantStatus)
			assert.Equal(t, tt.wantErr, errorBody(t, w))
		})
	}
}

func TestListNests_Order(t *testing.T) {
	conn, mock := testutil.NewMockDB(t)
	h := NewNestHandler(conn)

	a := storedNest(3, "N-3")
	b := storedNest(2, "N-2")
	c := storedNest(7, "N-7")
	c.DateFound = c.DateFound.AddDate(0, 0, -10)
	mock.ExpectQuery(`SELECT .* FROM turtle_nests ORDER BY date_found DESC, id DESC`).
		WillReturnRows(testutil.MockRows(store.NestFields(&a), store.NestFields(&b), store.NestFields(&c)))

	w := serve(h.List, testutil.MakeRequest("GET", "/api/nests", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.NestsResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Nests, 3)
	assert.Equal(t, []string{"N-3", "N-2", "N-7"},
		[]string{resp.Nests[0].NestCode, resp.Nests[1].NestCode, resp.Nests[2].NestCode})
}

func TestGetNestByCode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		conn, mock := testutil.NewMockDB(t)
		h := NewNestHandler(conn)

		stored := storedNest(4, "N-2025-001")
		mock.ExpectQuery(`SELECT .* FROM turtle_nests WHERE nest_code = \$1`).
			WithArgs("N-2025-001").
			WillReturnRows(testutil.MockRows(store.NestFields(&stored)))

		w := serve(h.GetByCode, testutil.MakeRequest("GET", "/api/nests/N-2025-001", nil, nil), "nest_code", "N-2025-001")

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.NestResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, int64(4), resp.Nest.ID)
	})

	t.Run("not found", func(t *testing.T) {
		conn, mock := testutil.NewMockDB(t)
		h := NewNestHandler(conn)

		var shape models.Nest
		mock.ExpectQuery(`SELECT .* FROM turtle_nests WHERE nest_code = \$1`).
			WillReturnRows(testutil.NoRows(store.NestFields(&shape)))

		w := serve(h.GetByCode, testutil.MakeRequest("GET", "/api/nests/missing", nil, nil), "nest_code", "missing")

		testutil.AssertStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "Nest not found", errorBody(t, w))
	})
}
