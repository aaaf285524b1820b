// file: internals/features/school/academics/academic_terms/controller/academic_term_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/academic_terms/dto"
	"sekolahku_backend/internals/features/school/academics/academic_terms/model"
	calendar "sekolahku_backend/internals/features/school/academics/calendar/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AcademicTermController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicTermController(db *gorm.DB, v *validator.Validate) *AcademicTermController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicTermController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	return nil
}

func unitErr(c *fiber.Ctx, scope string, err error) error {
	status, msg := calendar.MapError(err)
	if status == fiber.StatusInternalServerError {
		return helper.JsonSystemError(c, scope, err)
	}
	return helper.JsonError(c, status, msg)
}

/* ============================================
   CREATE (admin only)
   POST /api/a/academic-terms
============================================ */

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AcademicTermCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	if err := calendar.ValidateDateRange(p.AcademicTermStartDate, p.AcademicTermEndDate, "term"); err != nil {
		return unitErr(c, "term.create", err)
	}

	ent := p.ToModel(schoolID)

	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		// Parent dikunci FOR UPDATE: guard lock + containment membaca
		// nilai yang tidak bisa berubah sampai commit.
		parent, err := calendar.LoadYearForUpdate(tx, schoolID, p.AcademicTermYearID)
		if err != nil {
			return err
		}
		if err := calendar.GuardTermUnlocked(nil, parent); err != nil {
			return err
		}
		if err := calendar.AssertTermWithinYear(parent,
			ent.AcademicTermStartDate, ent.AcademicTermEndDate); err != nil {
			return err
		}
		if err := calendar.AssertNoTermOverlap(tx, parent.AcademicYearID, uuid.Nil,
			ent.AcademicTermStartDate, ent.AcademicTermEndDate); err != nil {
			return err
		}
		return tx.Create(&ent).Error
	}); err != nil {
		return unitErr(c, "term.create", err)
	}

	return helper.JsonCreated(c, "Berhasil membuat term", dto.FromModel(ent))
}

/* ============================================
   PATCH (admin only)
   PATCH /api/a/academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AcademicTermUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.AcademicTermModel
	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		t, err := calendar.LoadTermForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		parent, err := calendar.LoadYearForUpdate(tx, schoolID, t.AcademicTermYearID)
		if err != nil {
			return err
		}

		next := *t
		p.ApplyUpdates(&next)

		if err := calendar.ValidateDateRange(next.AcademicTermStartDate, next.AcademicTermEndDate, "term"); err != nil {
			return err
		}
		if err := calendar.GuardTermUnlocked(t, parent); err != nil {
			return err
		}
		if err := calendar.AssertTermWithinYear(parent,
			next.AcademicTermStartDate, next.AcademicTermEndDate); err != nil {
			return err
		}
		if err := calendar.AssertNoTermOverlap(tx, parent.AcademicYearID, id,
			next.AcademicTermStartDate, next.AcademicTermEndDate); err != nil {
			return err
		}

		if err := tx.Model(&next).
			Select("AcademicTermName", "AcademicTermStartDate", "AcademicTermEndDate").
			Updates(&next).Error; err != nil {
			return err
		}
		ent = next
		return nil
	}); err != nil {
		return unitErr(c, "term.patch", err)
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui term", dto.FromModel(ent))
}

/* ============================================
   DELETE (admin only)
   DELETE /api/a/academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		t, err := calendar.LoadTermForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		parent, err := calendar.LoadYearForUpdate(tx, schoolID, t.AcademicTermYearID)
		if err != nil {
			return err
		}
		if err := calendar.GuardTermUnlocked(t, parent); err != nil {
			return err
		}
		return tx.Delete(t).Error
	}); err != nil {
		return unitErr(c, "term.delete", err)
	}

	return helper.JsonDeleted(c, "Berhasil menghapus term", fiber.Map{"academic_term_id": id})
}

/* ============================================
   Lock / Unlock (admin only)
   PATCH /api/a/academic-terms/:id/lock
   PATCH /api/a/academic-terms/:id/unlock
============================================ */

func (ctl *AcademicTermController) Lock(c *fiber.Ctx) error   { return ctl.setLocked(c, true) }
func (ctl *AcademicTermController) Unlock(c *fiber.Ctx) error { return ctl.setLocked(c, false) }

func (ctl *AcademicTermController) setLocked(c *fiber.Ctx, locked bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.AcademicTermModel
	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		t, err := calendar.LoadTermForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		// kunci tahun mengalir ke bawah: selama tahunnya terkunci,
		// flag term tidak boleh diubah (lock maupun unlock).
		parent, err := calendar.LoadYearForUpdate(tx, schoolID, t.AcademicTermYearID)
		if err != nil {
			return err
		}
		if err := calendar.GuardTermUnlocked(nil, parent); err != nil {
			return err
		}
		if err := tx.Model(t).Update("academic_term_is_locked", locked).Error; err != nil {
			return err
		}
		ent = *t
		ent.AcademicTermIsLocked = locked
		return nil
	}); err != nil {
		return unitErr(c, "term.set_locked", err)
	}

	msg := "Berhasil mengunci term"
	if !locked {
		msg = "Berhasil membuka kunci term"
	}
	return helper.JsonUpdated(c, msg, dto.FromModel(ent))
}
