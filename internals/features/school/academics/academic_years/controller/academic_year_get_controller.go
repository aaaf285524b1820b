// file: internals/features/school/academics/academic_years/controller/academic_year_get_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/academics/academic_years/dto"
	"sekolahku_backend/internals/features/school/academics/academic_years/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ============================================
   LIST (admin + teacher)
   GET /api/u/academic-years
============================================ */

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.AcademicYearFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.AcademicYearModel{}).
		Where("academic_year_school_id = ?", schoolID)

	if q.Name != nil && strings.TrimSpace(*q.Name) != "" {
		dbq = dbq.Where("academic_year_name ILIKE ?", "%"+strings.TrimSpace(*q.Name)+"%")
	}
	if q.Current != nil {
		dbq = dbq.Where("academic_year_is_current = ?", *q.Current)
	}
	if q.Locked != nil {
		dbq = dbq.Where("academic_year_is_locked = ?", *q.Locked)
	}

	sortBy := "academic_year_created_at"
	if q.SortBy != nil {
		switch *q.SortBy {
		case "updated_at":
			sortBy = "academic_year_updated_at"
		case "start_date":
			sortBy = "academic_year_start_date"
		case "end_date":
			sortBy = "academic_year_end_date"
		case "name":
			sortBy = "academic_year_name"
		}
	}
	sortDir := "desc"
	if q.SortDir != nil && (*q.SortDir == "asc" || *q.SortDir == "desc") {
		sortDir = *q.SortDir
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonSystemError(c, "year.list.count", err)
	}

	var list []model.AcademicYearModel
	if err := dbq.
		Order(sortBy + " " + sortDir).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonSystemError(c, "year.list", err)
	}

	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
