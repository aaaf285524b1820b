// file: internals/features/school/classes/lessons/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonCtl "sekolahku_backend/internals/features/school/classes/lessons/controller"
)

func LessonUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := lessonCtl.NewLessonUserController(db)

	// Tidak ada role guard di sini — keputusan per-resource ada di
	// ownership check dalam handler.
	api.Get("/lessons/:id", ctl.GetByID)
}
