// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termRoute "sekolahku_backend/internals/features/school/academics/academic_terms/route"
	yearRoute "sekolahku_backend/internals/features/school/academics/academic_years/route"
)

func AcademicAdminRoutes(api fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearAdminRoutes(api, db)
	termRoute.AcademicTermAdminRoutes(api, db)
}

func AcademicUserRoutes(api fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearUserRoutes(api, db)
	termRoute.AcademicTermUserRoutes(api, db)
}
