// file: internals/features/school/academics/academic_terms/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	termCtl "sekolahku_backend/internals/features/school/academics/academic_terms/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AcademicTermUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("melihat academic terms"),
			constants.StaffRoles,
		),
	)

	base.Get("/academic-terms", ctl.List)
}
