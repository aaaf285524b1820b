// file: internals/features/school/academics/academic_years/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	yearCtl "sekolahku_backend/internals/features/school/academics/academic_years/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AcademicYearUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := yearCtl.NewAcademicYearController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("melihat tahun akademik"),
			constants.StaffRoles,
		),
	)

	base.Get("/academic-years", ctl.List)
}
