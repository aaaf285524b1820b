// file: internals/features/school/academics/academic_years/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	yearCtl "sekolahku_backend/internals/features/school/academics/academic_years/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AcademicYearAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := yearCtl.NewAcademicYearController(db, nil)

	// Guard role dikonsultasikan SEKALI di group — sebelum handler
	// menyentuh resource apa pun.
	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola tahun akademik"),
			constants.AdminOnly,
		),
	)

	base.Post("/academic-years", ctl.Create)
	base.Patch("/academic-years/:id", ctl.Patch)
	base.Delete("/academic-years/:id", ctl.Delete)
	base.Patch("/academic-years/:id/set-current", ctl.SetCurrent)
	base.Patch("/academic-years/:id/lock", ctl.Lock)
	base.Patch("/academic-years/:id/unlock", ctl.Unlock)
}
