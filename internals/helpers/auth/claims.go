// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals — HARUS diisi oleh middleware verifikasi JWT,
// bukan oleh handler.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
)

// GetUserIDFromToken mengambil identitas aktor yang sudah diresolve.
// Tidak ada identitas = Unauthenticated (401).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - identitas tidak ditemukan")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ditemukan")
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

// GetSchoolIDFromToken mengambil tenant aktif dari token.
// Semua query entitas kalender WAJIB discope dengan id ini.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocSchoolID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - school context tidak ditemukan")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - school_id tidak valid")
	}
	return id, nil
}
