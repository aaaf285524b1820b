// file: internals/features/school/academics/academic_terms/dto/academic_term_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/academic_terms/model"
)

// =======================
// Request DTO
// =======================

type AcademicTermCreateDTO struct {
	AcademicTermYearID uuid.UUID `json:"academic_term_year_id" validate:"required"`
	// Terima hanya 3 opsi ini
	AcademicTermName      string    `json:"academic_term_name"       validate:"required,oneof=Ganjil Genap Pendek"`
	AcademicTermStartDate time.Time `json:"academic_term_start_date" validate:"required"`
	AcademicTermEndDate   time.Time `json:"academic_term_end_date"   validate:"required,gtfield=AcademicTermStartDate"`
}

type AcademicTermUpdateDTO struct {
	AcademicTermName      *string    `json:"academic_term_name,omitempty" validate:"omitempty,oneof=Ganjil Genap Pendek"`
	AcademicTermStartDate *time.Time `json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate   *time.Time `json:"academic_term_end_date,omitempty"`
}

// (opsional) filter list
type AcademicTermFilterDTO struct {
	YearID  *string `query:"academic_year_id" validate:"omitempty,uuid4"`
	Name    *string `query:"name"             validate:"omitempty,oneof=Ganjil Genap Pendek"`
	SortBy  *string `query:"sort_by"          validate:"omitempty,oneof=created_at updated_at start_date end_date name"`
	SortDir *string `query:"sort_dir"         validate:"omitempty,oneof=asc desc"`
}

// =======================
// Response DTO
// =======================

type AcademicTermResponseDTO struct {
	AcademicTermID        uuid.UUID `json:"academic_term_id"`
	AcademicTermYearID    uuid.UUID `json:"academic_term_year_id"`
	AcademicTermSchoolID  uuid.UUID `json:"academic_term_school_id"`
	AcademicTermName      string    `json:"academic_term_name"`
	AcademicTermStartDate time.Time `json:"academic_term_start_date"`
	AcademicTermEndDate   time.Time `json:"academic_term_end_date"`
	AcademicTermIsLocked  bool      `json:"academic_term_is_locked"`
	AcademicTermCreatedAt time.Time `json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time `json:"academic_term_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *AcademicTermCreateDTO) Normalize() {
	p.AcademicTermName = strings.TrimSpace(p.AcademicTermName)
}

func (p *AcademicTermCreateDTO) ToModel(schoolID uuid.UUID) model.AcademicTermModel {
	return model.AcademicTermModel{
		AcademicTermYearID:    p.AcademicTermYearID,
		AcademicTermSchoolID:  schoolID,
		AcademicTermName:      p.AcademicTermName,
		AcademicTermStartDate: p.AcademicTermStartDate,
		AcademicTermEndDate:   p.AcademicTermEndDate,
	}
}

func (u *AcademicTermUpdateDTO) ApplyUpdates(ent *model.AcademicTermModel) {
	if u.AcademicTermName != nil {
		ent.AcademicTermName = strings.TrimSpace(*u.AcademicTermName)
	}
	if u.AcademicTermStartDate != nil {
		ent.AcademicTermStartDate = *u.AcademicTermStartDate
	}
	if u.AcademicTermEndDate != nil {
		ent.AcademicTermEndDate = *u.AcademicTermEndDate
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicTermModel) AcademicTermResponseDTO {
	return AcademicTermResponseDTO{
		AcademicTermID:        ent.AcademicTermID,
		AcademicTermYearID:    ent.AcademicTermYearID,
		AcademicTermSchoolID:  ent.AcademicTermSchoolID,
		AcademicTermName:      ent.AcademicTermName,
		AcademicTermStartDate: ent.AcademicTermStartDate,
		AcademicTermEndDate:   ent.AcademicTermEndDate,
		AcademicTermIsLocked:  ent.AcademicTermIsLocked,
		AcademicTermCreatedAt: ent.AcademicTermCreatedAt,
		AcademicTermUpdatedAt: ent.AcademicTermUpdatedAt,
	}
}

func FromModels(list []model.AcademicTermModel) []AcademicTermResponseDTO {
	out := make([]AcademicTermResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
