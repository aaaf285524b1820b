// file: internals/features/school/academics/calendar/service/rules.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	termModel "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	yearModel "sekolahku_backend/internals/features/school/academics/academic_years/model"
)

/* ============================================
   Predicates murni (tanpa DB)
============================================ */

// Overlaps: test closed-interval — dua periode bertabrakan bila
// s1 <= e2 DAN s2 <= e1. Batas yang menyentuh DIHITUNG bertabrakan.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Contains: [innerStart, innerEnd] ⊆ [outerStart, outerEnd].
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}

// ValidateDateRange: start harus strictly sebelum end.
func ValidateDateRange(start, end time.Time, entity string) error {
	if start.Before(end) {
		return nil
	}
	return NewRuleError(CodeInvalidRange,
		fmt.Sprintf("Tanggal mulai %s harus sebelum tanggal akhir", entity))
}

/* ============================================
   Loader FOR UPDATE (snapshot transaksi)
============================================ */

// LoadYearForUpdate mengambil tahun akademik milik school di dalam tx,
// dikunci FOR UPDATE supaya guard lock & current konsisten sampai commit.
func LoadYearForUpdate(tx *gorm.DB, schoolID, yearID uuid.UUID) (*yearModel.AcademicYearModel, error) {
	var y yearModel.AcademicYearModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("academic_year_school_id = ? AND academic_year_id = ?", schoolID, yearID).
		First(&y).Error; err != nil {
		return nil, err
	}
	return &y, nil
}

func LoadTermForUpdate(tx *gorm.DB, schoolID, termID uuid.UUID) (*termModel.AcademicTermModel, error) {
	var t termModel.AcademicTermModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("academic_term_school_id = ? AND academic_term_id = ?", schoolID, termID).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

/* ============================================
   LockGuard
============================================ */

// GuardYearUnlocked: tolak mutasi/penghapusan saat tahun terkunci.
func GuardYearUnlocked(y *yearModel.AcademicYearModel) error {
	if y.AcademicYearIsLocked {
		return NewRuleError(CodeLocked,
			fmt.Sprintf("Tahun akademik %q terkunci dan tidak bisa diubah", y.AcademicYearName))
	}
	return nil
}

// GuardTermUnlocked: lock turun ke bawah — term menolak tulis bila
// term-nya sendiri ATAU tahun induknya terkunci.
func GuardTermUnlocked(t *termModel.AcademicTermModel, parent *yearModel.AcademicYearModel) error {
	if t != nil && t.AcademicTermIsLocked {
		return NewRuleError(CodeLocked,
			fmt.Sprintf("Term %q terkunci dan tidak bisa diubah", t.AcademicTermName))
	}
	if parent.AcademicYearIsLocked {
		return NewRuleError(CodeLocked,
			fmt.Sprintf("Tahun akademik %q terkunci; term di dalamnya tidak bisa diubah", parent.AcademicYearName))
	}
	return nil
}

/* ============================================
   OverlapDetector
============================================ */

// AssertNoYearOverlap: kandidat vs seluruh sibling tahun akademik milik
// school yang sama, exclude entity yang sedang di-update. Dievaluasi di
// snapshot tx yang sama dengan write — lihat RunUnit.
func AssertNoYearOverlap(tx *gorm.DB, schoolID, excludeID uuid.UUID, start, end time.Time) error {
	var hit yearModel.AcademicYearModel
	q := tx.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_school_id = ?", schoolID).
		// closed interval: s1 <= e2 AND s2 <= e1
		Where("academic_year_start_date <= ? AND academic_year_end_date >= ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("academic_year_id <> ?", excludeID)
	}
	if err := q.Take(&hit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return NewRuleError(CodeOverlap,
		fmt.Sprintf("Periode bertabrakan dengan tahun akademik %q", hit.AcademicYearName))
}

// AssertNoTermOverlap: sibling = term lain dengan parent tahun yang sama.
func AssertNoTermOverlap(tx *gorm.DB, yearID, excludeID uuid.UUID, start, end time.Time) error {
	var hit termModel.AcademicTermModel
	q := tx.Model(&termModel.AcademicTermModel{}).
		Where("academic_term_year_id = ?", yearID).
		Where("academic_term_start_date <= ? AND academic_term_end_date >= ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("academic_term_id <> ?", excludeID)
	}
	if err := q.Take(&hit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return NewRuleError(CodeOverlap,
		fmt.Sprintf("Periode bertabrakan dengan term %q pada tahun akademik yang sama", hit.AcademicTermName))
}

/* ============================================
   ContainmentValidator (term ⊆ tahun induk)
============================================ */

func AssertTermWithinYear(parent *yearModel.AcademicYearModel, start, end time.Time) error {
	if Contains(parent.AcademicYearStartDate, parent.AcademicYearEndDate, start, end) {
		return nil
	}
	return NewRuleError(CodeOutOfBounds,
		fmt.Sprintf("Periode term harus berada di dalam tahun akademik %q", parent.AcademicYearName))
}

/* ============================================
   SingleCurrentEnforcer
============================================ */

// EnforceSingleCurrent meng-unset is_current pada SEMUA tahun lain milik
// school di unit yang sama dengan write yang men-set current — tidak ada
// interleaving yang bisa meninggalkan dua tahun current setelah commit.
func EnforceSingleCurrent(tx *gorm.DB, schoolID, keepYearID uuid.UUID) error {
	return tx.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_school_id = ? AND academic_year_id <> ? AND academic_year_is_current = TRUE",
			schoolID, keepYearID).
		Update("academic_year_is_current", false).Error
}
