// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonRoute "sekolahku_backend/internals/features/school/classes/lessons/route"
	recordRoute "sekolahku_backend/internals/features/school/students/records/route"
)

// SchoolUserRoutes: surface baca per-resource (ownership-gated).
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	lessonRoute.LessonUserRoutes(api, db)
	recordRoute.StudentRecordUserRoutes(api, db)
}
