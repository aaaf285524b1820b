// file: internals/features/school/academics/academic_terms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	termCtl "sekolahku_backend/internals/features/school/academics/academic_terms/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AcademicTermAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola academic terms"),
			constants.AdminOnly,
		),
	)

	base.Post("/academic-terms", ctl.Create)
	base.Patch("/academic-terms/:id", ctl.Patch)
	base.Delete("/academic-terms/:id", ctl.Delete)
	base.Patch("/academic-terms/:id/lock", ctl.Lock)
	base.Patch("/academic-terms/:id/unlock", ctl.Unlock)
}
