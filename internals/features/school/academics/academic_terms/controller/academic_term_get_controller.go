// file: internals/features/school/academics/academic_terms/controller/academic_term_get_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/academics/academic_terms/dto"
	"sekolahku_backend/internals/features/school/academics/academic_terms/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ============================================
   LIST (admin + teacher)
   GET /api/u/academic-terms?academic_year_id=
============================================ */

func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.AcademicTermFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.AcademicTermModel{}).
		Where("academic_term_school_id = ?", schoolID)

	if q.YearID != nil && strings.TrimSpace(*q.YearID) != "" {
		dbq = dbq.Where("academic_term_year_id = ?", strings.TrimSpace(*q.YearID))
	}
	if q.Name != nil && strings.TrimSpace(*q.Name) != "" {
		dbq = dbq.Where("academic_term_name = ?", strings.TrimSpace(*q.Name))
	}

	sortBy := "academic_term_start_date"
	if q.SortBy != nil {
		switch *q.SortBy {
		case "created_at":
			sortBy = "academic_term_created_at"
		case "updated_at":
			sortBy = "academic_term_updated_at"
		case "end_date":
			sortBy = "academic_term_end_date"
		case "name":
			sortBy = "academic_term_name"
		}
	}
	sortDir := "asc"
	if q.SortDir != nil && (*q.SortDir == "asc" || *q.SortDir == "desc") {
		sortDir = *q.SortDir
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonSystemError(c, "term.list.count", err)
	}

	var list []model.AcademicTermModel
	if err := dbq.
		Order(sortBy + " " + sortDir).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonSystemError(c, "term.list", err)
	}

	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
