// file: internals/features/school/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	termModel "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	"sekolahku_backend/internals/features/school/academics/academic_years/dto"
	"sekolahku_backend/internals/features/school/academics/academic_years/model"
	calendar "sekolahku_backend/internals/features/school/academics/calendar/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB, v *validator.Validate) *AcademicYearController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicYearController{DB: db, Validator: v}
}

/* ============================================
   RESP/ERR helpers
============================================ */

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

// unitErr memetakan error unit ke response; detail system error dicatat
// server-side dan tidak pernah bocor ke caller.
func unitErr(c *fiber.Ctx, scope string, err error) error {
	status, msg := calendar.MapError(err)
	if status == fiber.StatusInternalServerError {
		return helper.JsonSystemError(c, scope, err)
	}
	return helper.JsonError(c, status, msg)
}

/* ============================================
   CREATE (admin only)
   POST /api/a/academic-years
============================================ */

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AcademicYearCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	if err := calendar.ValidateDateRange(p.AcademicYearStartDate, p.AcademicYearEndDate, "tahun akademik"); err != nil {
		return unitErr(c, "year.create", err)
	}

	ent := p.ToModel(schoolID)
	// PK di-assign di sini supaya SingleCurrentEnforcer bisa meng-exclude
	// baris baru sebelum insert.
	ent.AcademicYearID = uuid.New()

	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		if err := calendar.AssertNoYearOverlap(tx, schoolID, uuid.Nil,
			ent.AcademicYearStartDate, ent.AcademicYearEndDate); err != nil {
			return err
		}
		if ent.AcademicYearIsCurrent {
			if err := calendar.EnforceSingleCurrent(tx, schoolID, ent.AcademicYearID); err != nil {
				return err
			}
		}
		return tx.Create(&ent).Error
	}); err != nil {
		return unitErr(c, "year.create", err)
	}

	return helper.JsonCreated(c, "Berhasil membuat tahun akademik", dto.FromModel(ent))
}

/* ============================================
   PATCH (admin only)
   PATCH /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AcademicYearUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.AcademicYearModel
	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		y, err := calendar.LoadYearForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}

		// Terapkan perubahan parsial ke working copy
		next := *y
		p.ApplyUpdates(&next)

		if err := calendar.ValidateDateRange(next.AcademicYearStartDate, next.AcademicYearEndDate, "tahun akademik"); err != nil {
			return err
		}
		if err := calendar.GuardYearUnlocked(y); err != nil {
			return err
		}
		if err := calendar.AssertNoYearOverlap(tx, schoolID, id,
			next.AcademicYearStartDate, next.AcademicYearEndDate); err != nil {
			return err
		}
		if next.AcademicYearIsCurrent && !y.AcademicYearIsCurrent {
			if err := calendar.EnforceSingleCurrent(tx, schoolID, id); err != nil {
				return err
			}
		}

		// Select kolom agar boolean false tidak di-skip oleh GORM
		if err := tx.Model(&next).
			Select("AcademicYearName", "AcademicYearStartDate", "AcademicYearEndDate", "AcademicYearIsCurrent").
			Updates(&next).Error; err != nil {
			return err
		}
		ent = next
		return nil
	}); err != nil {
		return unitErr(c, "year.patch", err)
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui tahun akademik", dto.FromModel(ent))
}

/* ============================================
   DELETE (admin only) — cascade ke terms
   DELETE /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		y, err := calendar.LoadYearForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		if err := calendar.GuardYearUnlocked(y); err != nil {
			return err
		}
		// Cascade: term ikut terhapus; lock level tahun yang menentukan,
		// lock per-term tidak dicek di jalur ini.
		if err := tx.
			Where("academic_term_year_id = ?", id).
			Delete(&termModel.AcademicTermModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(y).Error
	}); err != nil {
		return unitErr(c, "year.delete", err)
	}

	return helper.JsonDeleted(c, "Berhasil menghapus tahun akademik", fiber.Map{"academic_year_id": id})
}

/* ============================================
   Set Current (admin only) — eksklusif per school
   PATCH /api/a/academic-years/:id/set-current
============================================ */

func (ctl *AcademicYearController) SetCurrent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.AcademicYearModel
	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		y, err := calendar.LoadYearForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		if err := calendar.GuardYearUnlocked(y); err != nil {
			return err
		}
		if err := calendar.EnforceSingleCurrent(tx, schoolID, id); err != nil {
			return err
		}
		if err := tx.Model(y).Update("academic_year_is_current", true).Error; err != nil {
			return err
		}
		ent = *y
		ent.AcademicYearIsCurrent = true
		return nil
	}); err != nil {
		return unitErr(c, "year.set_current", err)
	}

	return helper.JsonUpdated(c, "Berhasil mengaktifkan tahun akademik", dto.FromModel(ent))
}

/* ============================================
   Lock / Unlock (admin only)
   PATCH /api/a/academic-years/:id/lock
   PATCH /api/a/academic-years/:id/unlock
============================================ */

func (ctl *AcademicYearController) Lock(c *fiber.Ctx) error   { return ctl.setLocked(c, true) }
func (ctl *AcademicYearController) Unlock(c *fiber.Ctx) error { return ctl.setLocked(c, false) }

// setLocked: satu-satunya jalur transisi flag lock. Unlock harus lewat
// endpoint eksplisit — tidak ada unlock implisit dari operasi lain.
func (ctl *AcademicYearController) setLocked(c *fiber.Ctx, locked bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.AcademicYearModel
	if err := calendar.RunUnit(c.UserContext(), ctl.DB, func(tx *gorm.DB) error {
		y, err := calendar.LoadYearForUpdate(tx, schoolID, id)
		if err != nil {
			return err
		}
		if err := tx.Model(y).Update("academic_year_is_locked", locked).Error; err != nil {
			return err
		}
		ent = *y
		ent.AcademicYearIsLocked = locked
		return nil
	}); err != nil {
		return unitErr(c, "year.set_locked", err)
	}

	msg := "Berhasil mengunci tahun akademik"
	if !locked {
		msg = "Berhasil membuka kunci tahun akademik"
	}
	return helper.JsonUpdated(c, msg, dto.FromModel(ent))
}
