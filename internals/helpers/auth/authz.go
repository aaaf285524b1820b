// file: internals/helpers/auth/authz.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RoleAllowed: predicate murni role vs required set. Tidak menyentuh
// resource apa pun — dieksekusi SEBELUM entity dilihat sama sekali,
// supaya aktor yang tidak berhak tidak bisa menebak keberadaan resource.
func RoleAllowed(role string, requiredRoles []string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return false
	}
	for _, r := range requiredRoles {
		if role == r {
			return true
		}
	}
	return false
}

// EnsureRole: gate role-based untuk handler/middleware.
// nil = allow; 401 saat identitas/role tidak ter-resolve, 403 saat role
// bukan anggota requiredRoles.
func EnsureRole(c *fiber.Ctx, requiredRoles []string, forbiddenMessage string) error {
	role, err := GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if RoleAllowed(role, requiredRoles) {
		return nil
	}
	if strings.TrimSpace(forbiddenMessage) == "" {
		forbiddenMessage = "Forbidden: Anda tidak berhak mengakses resource ini"
	}
	return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
}
