// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// OnlyRolesSlice: guard role per route-group. Konsultasi tabel role
// dilakukan SEKALI di sini; handler tidak mengulang check inline.
func OnlyRolesSlice(customForbiddenMessage string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := helperAuth.EnsureRole(c, allowedRoles, customForbiddenMessage); err != nil {
			return err
		}
		return c.Next()
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(customMessage, roles)
}
