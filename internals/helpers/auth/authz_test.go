// file: internals/helpers/auth/authz_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helperResp "sekolahku_backend/internals/helpers"
)

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed("admin", constants.AdminOnly))
	assert.True(t, RoleAllowed("teacher", constants.StaffRoles))
	// normalisasi casing & spasi
	assert.True(t, RoleAllowed("  Admin ", constants.AdminOnly))

	assert.False(t, RoleAllowed("teacher", constants.AdminOnly))
	assert.False(t, RoleAllowed("student", constants.StaffRoles))
	assert.False(t, RoleAllowed("", constants.AdminOnly))
	assert.False(t, RoleAllowed("superuser", constants.AllRoles))
}

// ensureRoleStatus menjalankan EnsureRole di dalam handler fiber asli
// supaya jalur locals sama dengan produksi.
func ensureRoleStatus(t *testing.T, role string, required []string) int {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: helperResp.FiberErrorHandler})
	app.Get("/cek", func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(LocUserRole, role)
		}
		if err := EnsureRole(c, required, constants.RoleErrorAdmin("modul uji")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cek", nil), -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestEnsureRole(t *testing.T) {
	// allow
	assert.Equal(t, fiber.StatusOK, ensureRoleStatus(t, "admin", constants.AdminOnly))
	assert.Equal(t, fiber.StatusOK, ensureRoleStatus(t, "teacher", constants.StaffRoles))

	// role ada tapi bukan anggota required set = 403
	assert.Equal(t, fiber.StatusForbidden, ensureRoleStatus(t, "teacher", constants.AdminOnly))
	assert.Equal(t, fiber.StatusForbidden, ensureRoleStatus(t, "parent", constants.StaffRoles))

	// identitas tidak ter-resolve = 401, bukan 403
	assert.Equal(t, fiber.StatusUnauthorized, ensureRoleStatus(t, "", constants.AdminOnly))
}
