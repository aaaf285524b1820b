// file: internals/features/school/students/records/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordCtl "sekolahku_backend/internals/features/school/students/records/controller"
)

func StudentRecordUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := recordCtl.NewStudentRecordUserController(db)

	api.Get("/student-records/:id", ctl.GetByID)
}
