// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SubjectModel: mata kuliah. SKS (credits) menentukan bentuk pohon
// portofolio (subseksi kondisional untuk >= 4 SKS).
type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	SubjectCode string `gorm:"type:varchar(20);not null;uniqueIndex:uq_subject_code;column:subject_code" json:"subject_code"`
	SubjectName string `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`

	SubjectCredits int `gorm:"type:integer;not null;column:subject_credits" json:"subject_credits"`

	// Label grup/kelas yang tersedia untuk mata kuliah ini, mis. {"A","B"}.
	SubjectGroupLabels pq.StringArray `gorm:"type:text[];column:subject_group_labels" json:"subject_group_labels,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectCode = strings.ToUpper(strings.TrimSpace(m.SubjectCode))
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	return nil
}
