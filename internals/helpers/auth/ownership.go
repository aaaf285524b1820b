// file: internals/helpers/auth/ownership.go
package helper

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationKind: klaim relasional aktor terhadap satu instance resource.
// Berbeda dari role check — ini per-resource, bukan per-fitur.
type RelationKind string

const (
	RelationTeacherOwnsLesson      RelationKind = "teacher_owns_lesson"
	RelationTeacherSupervisesClass RelationKind = "teacher_supervises_class"
	RelationParentOwnsStudent      RelationKind = "parent_owns_student"
	RelationStudentOwnsRecord      RelationKind = "student_owns_record"
	RelationStudentInClass         RelationKind = "student_in_class"
)

// CanAccess: satu existence check terarah per relation kind.
// Tabel relasi adalah fakta eksternal (dikelola fitur lain) — di sini
// hanya dibaca, tidak pernah ditulis.
func CanAccess(db *gorm.DB, actorID, resourceID uuid.UUID, kind RelationKind) (bool, error) {
	if actorID == uuid.Nil || resourceID == uuid.Nil {
		return false, nil
	}

	var cnt int64
	q := db.Session(&gorm.Session{})

	switch kind {
	case RelationTeacherOwnsLesson:
		q = q.Table("lessons").
			Where("lesson_id = ? AND lesson_teacher_id = ? AND lesson_deleted_at IS NULL", resourceID, actorID)
	case RelationTeacherSupervisesClass:
		q = q.Table("class_section_teachers").
			Where("class_section_teacher_section_id = ? AND class_section_teacher_user_id = ? AND class_section_teacher_deleted_at IS NULL", resourceID, actorID)
	case RelationParentOwnsStudent:
		q = q.Table("parent_students").
			Where("parent_student_student_id = ? AND parent_student_parent_id = ? AND parent_student_deleted_at IS NULL", resourceID, actorID)
	case RelationStudentOwnsRecord:
		q = q.Table("student_records").
			Where("student_record_id = ? AND student_record_student_id = ? AND student_record_deleted_at IS NULL", resourceID, actorID)
	case RelationStudentInClass:
		q = q.Table("class_section_students").
			Where("class_section_student_section_id = ? AND class_section_student_user_id = ? AND class_section_student_deleted_at IS NULL", resourceID, actorID)
	default:
		return false, fmt.Errorf("relation kind tidak dikenal: %s", kind)
	}

	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// CanAccessAny: facade komposisi — allow bila salah satu relasi terpenuhi.
// Dipakai handler yang menerima lebih dari satu jalur kepemilikan
// (mis. lesson boleh dibaca guru pengampu ATAU murid kelasnya).
func CanAccessAny(db *gorm.DB, actorID uuid.UUID, checks map[RelationKind]uuid.UUID) (bool, error) {
	for kind, resourceID := range checks {
		ok, err := CanAccess(db, actorID, resourceID, kind)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
