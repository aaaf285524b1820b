// file: internals/features/school/classes/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_id" json:"lesson_id"`
	LessonSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_school_id" json:"lesson_school_id"`

	LessonClassSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_class_section_id" json:"lesson_class_section_id"`
	LessonTeacherID      uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_teacher_id" json:"lesson_teacher_id"`

	LessonTitle string    `gorm:"type:text;not null;column:lesson_title" json:"lesson_title"`
	LessonDate  time.Time `gorm:"type:timestamptz;not null;column:lesson_date" json:"lesson_date"`

	LessonCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:lesson_created_at" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:lesson_updated_at" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"lesson_deleted_at,omitempty"`
}

func (LessonModel) TableName() string { return "lessons" }
