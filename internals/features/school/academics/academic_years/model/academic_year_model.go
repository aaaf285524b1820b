// file: internals/features/school/academics/academic_years/model/academic_year_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	// ============ PK & Tenant ============
	AcademicYearID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`
	// Partial unique index = backstop storage-level untuk invariant
	// "maksimal satu tahun current per school".
	AcademicYearSchoolID uuid.UUID `gorm:"type:uuid;not null;column:academic_year_school_id;uniqueIndex:uq_academic_years_current,where:academic_year_is_current AND academic_year_deleted_at IS NULL" json:"academic_year_school_id"`

	// ============ Identitas & periode ============
	// Example name: "2024/2025"
	AcademicYearName      string    `gorm:"type:text;not null;column:academic_year_name" json:"academic_year_name"`
	AcademicYearStartDate time.Time `gorm:"type:timestamptz;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"type:timestamptz;not null;column:academic_year_end_date" json:"academic_year_end_date"`

	// Flag state yang dilindungi engine: current eksklusif per tenant,
	// locked menolak mutasi/penghapusan.
	AcademicYearIsCurrent bool `gorm:"not null;default:false;column:academic_year_is_current" json:"academic_year_is_current"`
	AcademicYearIsLocked  bool `gorm:"not null;default:false;column:academic_year_is_locked" json:"academic_year_is_locked"`

	// JSONB extra stats (optional / flexible)
	AcademicYearStats datatypes.JSON `gorm:"type:jsonb;column:academic_year_stats" json:"academic_year_stats,omitempty"`

	// ============ Audit / Soft delete ============
	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

// ============ Hooks: validation & light normalization ============
func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: start < end (strict). Update kolom tunggal (mis. flag
	// current/locked) memakai model tanpa tanggal — hook hanya memvalidasi
	// saat kedua tanggal terisi.
	if !m.AcademicYearStartDate.IsZero() && !m.AcademicYearEndDate.IsZero() {
		if !m.AcademicYearStartDate.Before(m.AcademicYearEndDate) {
			return errors.New("academic_year_start_date must be before academic_year_end_date")
		}
	}
	m.AcademicYearName = strings.TrimSpace(m.AcademicYearName)
	return nil
}
