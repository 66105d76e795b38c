// file: internals/features/school/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentModel: tuple (teacher, subject, cycle, group) — unit yang
// jadi dasar generate portofolio. Unik per kombinasi.
type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_assignment_tuple;column:assignment_teacher_id" json:"assignment_teacher_id"`
	AssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_assignment_tuple;column:assignment_subject_id" json:"assignment_subject_id"`
	AssignmentCycleID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_assignment_tuple;column:assignment_cycle_id" json:"assignment_cycle_id"`
	AssignmentGroup     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_assignment_tuple;column:assignment_group" json:"assignment_group"`

	AssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }
