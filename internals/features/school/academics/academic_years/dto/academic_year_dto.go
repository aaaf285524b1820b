// file: internals/features/school/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/academic_years/model"
)

// =======================
// Request DTO
// =======================

type AcademicYearCreateDTO struct {
	AcademicYearName      string    `json:"academic_year_name"       validate:"required,min=4"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	// gtfield: sejalan dengan rule engine (start < end, strict)
	AcademicYearEndDate time.Time `json:"academic_year_end_date"   validate:"required,gtfield=AcademicYearStartDate"`
	// pointer: bedakan "tidak dikirim" vs "false"
	AcademicYearIsCurrent *bool `json:"academic_year_is_current,omitempty"`
}

type AcademicYearUpdateDTO struct {
	AcademicYearName      *string    `json:"academic_year_name,omitempty" validate:"omitempty,min=4"`
	AcademicYearStartDate *time.Time `json:"academic_year_start_date,omitempty"`
	AcademicYearEndDate   *time.Time `json:"academic_year_end_date,omitempty"`
	AcademicYearIsCurrent *bool      `json:"academic_year_is_current,omitempty"`
}

// (opsional) filter list
type AcademicYearFilterDTO struct {
	Name    *string `query:"name"     validate:"omitempty,min=1"`
	Current *bool   `query:"current"  validate:"omitempty"`
	Locked  *bool   `query:"locked"   validate:"omitempty"`
	SortBy  *string `query:"sort_by"  validate:"omitempty,oneof=created_at updated_at start_date end_date name"`
	SortDir *string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// =======================
// Response DTO
// =======================

type AcademicYearResponseDTO struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearSchoolID  uuid.UUID `json:"academic_year_school_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"`
	AcademicYearIsCurrent bool      `json:"academic_year_is_current"`
	AcademicYearIsLocked  bool      `json:"academic_year_is_locked"`
	AcademicYearCreatedAt time.Time `json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time `json:"academic_year_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *AcademicYearCreateDTO) Normalize() {
	p.AcademicYearName = strings.TrimSpace(p.AcademicYearName)
}

func (p *AcademicYearCreateDTO) WantsCurrent() bool {
	return p.AcademicYearIsCurrent != nil && *p.AcademicYearIsCurrent
}

func (p *AcademicYearCreateDTO) ToModel(schoolID uuid.UUID) model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearSchoolID:  schoolID,
		AcademicYearName:      p.AcademicYearName,
		AcademicYearStartDate: p.AcademicYearStartDate,
		AcademicYearEndDate:   p.AcademicYearEndDate,
		AcademicYearIsCurrent: p.WantsCurrent(),
	}
}

func (u *AcademicYearUpdateDTO) ApplyUpdates(ent *model.AcademicYearModel) {
	if u.AcademicYearName != nil {
		ent.AcademicYearName = strings.TrimSpace(*u.AcademicYearName)
	}
	if u.AcademicYearStartDate != nil {
		ent.AcademicYearStartDate = *u.AcademicYearStartDate
	}
	if u.AcademicYearEndDate != nil {
		ent.AcademicYearEndDate = *u.AcademicYearEndDate
	}
	if u.AcademicYearIsCurrent != nil {
		ent.AcademicYearIsCurrent = *u.AcademicYearIsCurrent
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicYearModel) AcademicYearResponseDTO {
	return AcademicYearResponseDTO{
		AcademicYearID:        ent.AcademicYearID,
		AcademicYearSchoolID:  ent.AcademicYearSchoolID,
		AcademicYearName:      ent.AcademicYearName,
		AcademicYearStartDate: ent.AcademicYearStartDate,
		AcademicYearEndDate:   ent.AcademicYearEndDate,
		AcademicYearIsCurrent: ent.AcademicYearIsCurrent,
		AcademicYearIsLocked:  ent.AcademicYearIsLocked,
		AcademicYearCreatedAt: ent.AcademicYearCreatedAt,
		AcademicYearUpdatedAt: ent.AcademicYearUpdatedAt,
	}
}

func FromModels(list []model.AcademicYearModel) []AcademicYearResponseDTO {
	out := make([]AcademicYearResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
