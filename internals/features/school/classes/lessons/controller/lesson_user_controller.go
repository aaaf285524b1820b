// file: internals/features/school/classes/lessons/controller/lesson_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/classes/lessons/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type LessonUserController struct {
	DB *gorm.DB
}

func NewLessonUserController(db *gorm.DB) *LessonUserController {
	return &LessonUserController{DB: db}
}

/* ============================================
   GET BY ID — ownership-gated
   GET /api/u/lessons/:id
============================================ */

// Kebijakan anti-enumeration: relasi gagal dan resource tidak ada
// SAMA-SAMA dijawab 404 generik — caller tidak bisa membedakan keduanya.
func (ctl *LessonUserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.LessonModel
	if err := ctl.DB.
		Where("lesson_school_id = ? AND lesson_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonSystemError(c, "lesson.get", err)
	}

	allowed := false
	switch role {
	case constants.RoleAdmin:
		allowed = true
	case constants.RoleTeacher:
		allowed, err = helperAuth.CanAccessAny(ctl.DB, actorID, map[helperAuth.RelationKind]uuid.UUID{
			helperAuth.RelationTeacherOwnsLesson:      ent.LessonID,
			helperAuth.RelationTeacherSupervisesClass: ent.LessonClassSectionID,
		})
	case constants.RoleStudent:
		allowed, err = helperAuth.CanAccess(ctl.DB, actorID, ent.LessonClassSectionID,
			helperAuth.RelationStudentInClass)
	}
	if err != nil {
		return helper.JsonSystemError(c, "lesson.ownership", err)
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", ent)
}
