package constants

import "fmt"

// Role enum — closed set, single source of truth untuk seluruh guard.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya admin atau teacher yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
// Satu tabel role per operasi; guard/route tidak menurunkan ulang
// daftar role secara inline.
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	// Mutasi entitas kalender: admin saja.
	AdminOnly = []string{
		RoleAdmin,
	}

	// Baca entitas kalender: admin + teacher.
	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	// Pemilik relasi murid (rapor, kehadiran).
	GuardianRoles = []string{
		RoleStudent,
		RoleParent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
