// file: internals/features/school/students/records/model/student_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentRecordModel struct {
	StudentRecordID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_record_id" json:"student_record_id"`
	StudentRecordSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_record_school_id" json:"student_record_school_id"`

	StudentRecordStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_record_student_id" json:"student_record_student_id"`

	// Example type: "report_card" | "attendance_summary" | "note"
	StudentRecordType  string `gorm:"type:text;not null;column:student_record_type" json:"student_record_type"`
	StudentRecordTitle string `gorm:"type:text;not null;column:student_record_title" json:"student_record_title"`

	// Payload fleksibel per jenis record
	StudentRecordPayload datatypes.JSON `gorm:"type:jsonb;column:student_record_payload" json:"student_record_payload,omitempty"`

	StudentRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_record_created_at" json:"student_record_created_at"`
	StudentRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_record_updated_at" json:"student_record_updated_at"`
	StudentRecordDeletedAt gorm.DeletedAt `gorm:"column:student_record_deleted_at;index" json:"student_record_deleted_at,omitempty"`
}

func (StudentRecordModel) TableName() string { return "student_records" }
