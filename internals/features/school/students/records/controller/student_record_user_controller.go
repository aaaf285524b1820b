// file: internals/features/school/students/records/controller/student_record_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/students/records/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentRecordUserController struct {
	DB *gorm.DB
}

func NewStudentRecordUserController(db *gorm.DB) *StudentRecordUserController {
	return &StudentRecordUserController{DB: db}
}

/* ============================================
   GET BY ID — ownership-gated
   GET /api/u/student-records/:id
============================================ */

// Murid hanya record miliknya sendiri; orang tua hanya record anaknya.
// Deny dan not-found dijawab identik (404 generik).
func (ctl *StudentRecordUserController) GetByID(c *fiber.Ctx) error {
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

	var ent model.StudentRecordModel
	if err := ctl.DB.
		Where("student_record_school_id = ? AND student_record_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonSystemError(c, "student_record.get", err)
	}

	allowed := false
	switch role {
	case constants.RoleAdmin:
		allowed = true
	case constants.RoleStudent:
		allowed, err = helperAuth.CanAccess(ctl.DB, actorID, ent.StudentRecordID,
			helperAuth.RelationStudentOwnsRecord)
	case constants.RoleParent:
		allowed, err = helperAuth.CanAccess(ctl.DB, actorID, ent.StudentRecordStudentID,
			helperAuth.RelationParentOwnsStudent)
	}
	if err != nil {
		return helper.JsonSystemError(c, "student_record.ownership", err)
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", ent)
}
