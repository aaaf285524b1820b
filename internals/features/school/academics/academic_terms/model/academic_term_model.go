// file: internals/features/school/academics/academic_terms/model/academic_term_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicTermModel struct {
	// ============ PK, parent & tenant ============
	AcademicTermID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_term_id" json:"academic_term_id"`
	AcademicTermYearID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_term_year_id" json:"academic_term_year_id"`
	// Tenant didenormalisasi supaya scoping query tidak perlu join.
	AcademicTermSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_term_school_id" json:"academic_term_school_id"`

	// ============ Identitas & periode ============
	// Example name: "Ganjil" | "Genap" | "Pendek"
	AcademicTermName      string    `gorm:"type:text;not null;column:academic_term_name" json:"academic_term_name"`
	AcademicTermStartDate time.Time `gorm:"type:timestamptz;not null;column:academic_term_start_date" json:"academic_term_start_date"`
	AcademicTermEndDate   time.Time `gorm:"type:timestamptz;not null;column:academic_term_end_date" json:"academic_term_end_date"`

	AcademicTermIsLocked bool `gorm:"not null;default:false;column:academic_term_is_locked" json:"academic_term_is_locked"`

	// ============ Audit / Soft delete ============
	AcademicTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index" json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

// ============ Hooks: validation & light normalization ============
func (m *AcademicTermModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: start < end (strict). Update kolom tunggal (flag lock)
	// memakai model tanpa tanggal — hook hanya memvalidasi saat kedua
	// tanggal terisi.
	if !m.AcademicTermStartDate.IsZero() && !m.AcademicTermEndDate.IsZero() {
		if !m.AcademicTermStartDate.Before(m.AcademicTermEndDate) {
			return errors.New("academic_term_start_date must be before academic_term_end_date")
		}
	}
	m.AcademicTermName = strings.TrimSpace(m.AcademicTermName)
	return nil
}
