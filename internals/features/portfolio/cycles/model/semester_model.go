// file: internals/features/portfolio/cycles/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SemesterModel: record semester default yang dibuat bersama siklus
// (inactive) dan diaktifkan saat siklusnya jadi active.
type SemesterModel struct {
	SemesterID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_id" json:"semester_id"`
	SemesterCycleID uuid.UUID `gorm:"type:uuid;not null;index;column:semester_cycle_id" json:"semester_cycle_id"`

	// Example label: "2025-I"
	SemesterLabel    string `gorm:"type:varchar(20);not null;column:semester_label" json:"semester_label"`
	SemesterYear     int    `gorm:"type:integer;not null;column:semester_year" json:"semester_year"`
	SemesterIsActive bool   `gorm:"not null;default:false;column:semester_is_active" json:"semester_is_active"`

	SemesterCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }
