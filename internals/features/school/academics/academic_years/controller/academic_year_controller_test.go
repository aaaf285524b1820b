// file: internals/features/school/academics/academic_years/controller/academic_year_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

/* ============================================
   Harness
============================================ */

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

// withIdentity meniru hasil hydrate middleware JWT tanpa token asli.
func withIdentity(role string, schoolID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocUserRole, role)
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	}
}

func newYearApp(db *gorm.DB, role string, schoolID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctl := NewAcademicYearController(db, nil)

	grp := app.Group("/api/a/academic-years",
		withIdentity(role, schoolID),
		authMw.OnlyRolesSlice(constants.RoleErrorAdmin("tahun akademik"), constants.AdminOnly),
	)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
	grp.Patch("/:id/set-current", ctl.SetCurrent)
	grp.Patch("/:id/lock", ctl.Lock)
	grp.Patch("/:id/unlock", ctl.Unlock)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(body))
		rd = buf
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	parsed := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func yearRow(id, schoolID uuid.UUID, name string, start, end time.Time, current, locked bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"academic_year_id", "academic_year_school_id", "academic_year_name",
		"academic_year_start_date", "academic_year_end_date",
		"academic_year_is_current", "academic_year_is_locked",
	}).AddRow(id.String(), schoolID.String(), name, start, end, current, locked)
}

/* ============================================
   CREATE
============================================ */

func TestYearCreate_RejectsOverlapAndRollsBack(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id`).
		WillReturnRows(yearRow(uuid.New(), schoolID, "2024/2025",
			day("2024-09-01"), day("2025-06-30"), true, false))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/a/academic-years/", fiber.Map{
		"academic_year_name":       "2025/2026",
		"academic_year_start_date": "2025-01-01T00:00:00Z",
		"academic_year_end_date":   "2025-12-31T00:00:00Z",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "bertabrakan")
	assert.Contains(t, body["error"], "2024/2025")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearCreate_InvalidRangeNeverTouchesStorage(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	// end <= start: ditolak sebelum unit dibuka — tanpa expectation sqlmock
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/a/academic-years/", fiber.Map{
		"academic_year_name":       "2025/2026",
		"academic_year_start_date": "2025-12-31T00:00:00Z",
		"academic_year_end_date":   "2025-01-01T00:00:00Z",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearCreate_ForbiddenForTeacher(t *testing.T) {
	db, mock := newMockGorm(t)
	app := newYearApp(db, constants.RoleTeacher, uuid.New())

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/a/academic-years/", fiber.Map{
		"academic_year_name":       "2025/2026",
		"academic_year_start_date": "2025-07-01T00:00:00Z",
		"academic_year_end_date":   "2026-06-30T00:00:00Z",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	// penolakan middleware memakai envelope error yang sama dengan handler
	assert.Equal(t, constants.RoleErrorAdmin("tahun akademik"), body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearCreate_Success(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	// tidak ada sibling yang bertabrakan
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectQuery(`INSERT INTO "academic_years"`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/a/academic-years/", fiber.Map{
		"academic_year_name":       "2025/2026",
		"academic_year_start_date": "2025-07-01T00:00:00Z",
		"academic_year_end_date":   "2026-06-30T00:00:00Z",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "unexpected body: %v", body)
	assert.Equal(t, "2025/2026", data["academic_year_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   PATCH — LockGuard
============================================ */

func TestYearPatch_RefusedWhenLocked(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	yearID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(yearRow(yearID, schoolID, "2024/2025",
			day("2024-09-01"), day("2025-06-30"), false, true))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, fiber.MethodPatch, "/api/a/academic-years/"+yearID.String(), fiber.Map{
		"academic_year_name": "2024/2025 Revisi",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "terkunci")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearPatch_NotFoundForOtherSchool(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	// scoping by school: row milik tenant lain tidak pernah ditemukan
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, fiber.MethodPatch, "/api/a/academic-years/"+uuid.NewString(), fiber.Map{
		"academic_year_name": "2024/2025 Revisi",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Data tidak ditemukan", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   SET CURRENT — SingleCurrentEnforcer
============================================ */

func TestYearSetCurrent_UnsetsSiblingsInOneUnit(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	yearID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(yearRow(yearID, schoolID, "2025/2026",
			day("2025-07-01"), day("2026-06-30"), false, false))
	// unset sibling current, lalu set target — keduanya sebelum commit
	mock.ExpectExec(`UPDATE "academic_years" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "academic_years" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, body := doJSON(t, app, fiber.MethodPatch,
		"/api/a/academic-years/"+yearID.String()+"/set-current", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "unexpected body: %v", body)
	assert.Equal(t, true, data["academic_year_is_current"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearSetCurrent_RefusedWhenLocked(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	yearID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(yearRow(yearID, schoolID, "2025/2026",
			day("2025-07-01"), day("2026-06-30"), false, true))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, fiber.MethodPatch,
		"/api/a/academic-years/"+yearID.String()+"/set-current", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "terkunci")
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   DELETE — cascade ke terms
============================================ */

func TestYearDelete_CascadesTerms(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	yearID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(yearRow(yearID, schoolID, "2024/2025",
			day("2024-09-01"), day("2025-06-30"), false, false))
	// soft delete: term dulu, baru tahunnya
	mock.ExpectExec(`UPDATE "academic_terms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "academic_years" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, body := doJSON(t, app, fiber.MethodDelete, "/api/a/academic-years/"+yearID.String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearDelete_RefusedWhenLocked(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	yearID := uuid.New()
	app := newYearApp(db, constants.RoleAdmin, schoolID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
		WillReturnRows(yearRow(yearID, schoolID, "2024/2025",
			day("2024-09-01"), day("2025-06-30"), false, true))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, fiber.MethodDelete, "/api/a/academic-years/"+yearID.String(), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "terkunci")
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   LIST — baca untuk staff
============================================ */

func newYearListApp(db *gorm.DB, role string, schoolID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctl := NewAcademicYearController(db, nil)
	app.Get("/api/u/academic-years",
		withIdentity(role, schoolID),
		authMw.OnlyRolesSlice(constants.RoleErrorStaff("tahun akademik"), constants.StaffRoles),
		ctl.List)
	return app
}

func TestYearList_TeacherCanRead(t *testing.T) {
	db, mock := newMockGorm(t)
	schoolID := uuid.New()
	app := newYearListApp(db, constants.RoleTeacher, schoolID)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "academic_years"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id`).
		WillReturnRows(yearRow(uuid.New(), schoolID, "2024/2025",
			day("2024-09-01"), day("2025-06-30"), true, false))

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/u/academic-years?current=true", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	items, ok := body["data"].([]any)
	require.True(t, ok, "unexpected body: %v", body)
	require.Len(t, items, 1)
	pg, ok := body["pagination"].(map[string]any)
	require.True(t, ok, "unexpected body: %v", body)
	assert.Equal(t, float64(1), pg["total"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearList_ForbiddenForStudent(t *testing.T) {
	db, mock := newMockGorm(t)
	app := newYearListApp(db, constants.RoleStudent, uuid.New())

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/u/academic-years", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   LOCK / UNLOCK — transisi eksplisit
============================================ */

func TestYearLockUnlock(t *testing.T) {
	schoolID := uuid.New()
	yearID := uuid.New()

	for _, tc := range []struct {
		path string
		want bool
	}{
		{"/lock", true},
		{"/unlock", false},
	} {
		db, mock := newMockGorm(t)
		app := newYearApp(db, constants.RoleAdmin, schoolID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE \(academic_year_school_id .* FOR UPDATE`).
			WillReturnRows(yearRow(yearID, schoolID, "2024/2025",
				day("2024-09-01"), day("2025-06-30"), false, !tc.want))
		mock.ExpectExec(`UPDATE "academic_years" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, body := doJSON(t, app, fiber.MethodPatch,
			"/api/a/academic-years/"+yearID.String()+tc.path, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok, "unexpected body: %v", body)
		assert.Equal(t, tc.want, data["academic_year_is_locked"])
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}
