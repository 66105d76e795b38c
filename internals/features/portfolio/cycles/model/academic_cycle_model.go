// file: internals/features/portfolio/cycles/model/academic_cycle_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// State siklus akademik. Lifecycle maju satu arah, tidak boleh loncat
// dan tidak boleh mundur.
const (
	CycleStatePreparation    = "preparation"
	CycleStateInitialization = "initialization"
	CycleStateActive         = "active"
	CycleStateVerification   = "verification"
	CycleStateFinalization   = "finalization"
	CycleStateArchived       = "archived"
)

// CycleStateOrder: urutan lifecycle. Index dipakai untuk validasi transisi.
var CycleStateOrder = []string{
	CycleStatePreparation,
	CycleStateInitialization,
	CycleStateActive,
	CycleStateVerification,
	CycleStateFinalization,
	CycleStateArchived,
}

func CycleStateIndex(state string) int {
	for i, s := range CycleStateOrder {
		if s == state {
			return i
		}
	}
	return -1
}

func IsCycleState(state string) bool { return CycleStateIndex(state) >= 0 }

// NextCycleState: successor langsung, "" kalau sudah terminal / tidak dikenal.
func NextCycleState(state string) string {
	i := CycleStateIndex(state)
	if i < 0 || i+1 >= len(CycleStateOrder) {
		return ""
	}
	return CycleStateOrder[i+1]
}

type AcademicCycleModel struct {
	AcademicCycleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_cycle_id" json:"academic_cycle_id"`

	// Example name: "2025-I"
	AcademicCycleName        string  `gorm:"type:varchar(50);not null;uniqueIndex:uq_academic_cycle_name;column:academic_cycle_name" json:"academic_cycle_name"`
	AcademicCycleDescription *string `gorm:"type:text;column:academic_cycle_description" json:"academic_cycle_description,omitempty"`

	// Partial unique index: maksimal satu baris active dan satu baris
	// verification di seluruh tabel. Dua transaksi yang sama-sama tidak
	// melihat baris active lain (phantom di bawah read-committed) tetap
	// tertangkap di sini saat commit.
	AcademicCycleState string `gorm:"type:varchar(20);not null;default:'preparation';index;uniqueIndex:uq_academic_cycle_exclusive_state,where:academic_cycle_state = 'active' OR academic_cycle_state = 'verification';column:academic_cycle_state" json:"academic_cycle_state"`

	AcademicCycleStartDate time.Time  `gorm:"type:timestamptz;not null;column:academic_cycle_start_date" json:"academic_cycle_start_date"`
	AcademicCycleEndDate   time.Time  `gorm:"type:timestamptz;not null;column:academic_cycle_end_date" json:"academic_cycle_end_date"`
	AcademicCycleClosedAt  *time.Time `gorm:"type:timestamptz;column:academic_cycle_closed_at" json:"academic_cycle_closed_at,omitempty"`

	AcademicCycleYear          int    `gorm:"type:integer;not null;column:academic_cycle_year" json:"academic_cycle_year"`
	AcademicCycleSemesterLabel string `gorm:"type:varchar(20);not null;column:academic_cycle_semester_label" json:"academic_cycle_semester_label"`

	// Konfigurasi bebas per siklus (jsonb)
	AcademicCycleConfig datatypes.JSON `gorm:"type:jsonb;column:academic_cycle_config" json:"academic_cycle_config,omitempty"`

	AcademicCycleCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:academic_cycle_created_by" json:"academic_cycle_created_by"`

	AcademicCycleCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_cycle_created_at" json:"academic_cycle_created_at"`
	AcademicCycleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_cycle_updated_at" json:"academic_cycle_updated_at"`
	AcademicCycleDeletedAt gorm.DeletedAt `gorm:"column:academic_cycle_deleted_at;index" json:"academic_cycle_deleted_at,omitempty"`
}

func (AcademicCycleModel) TableName() string { return "academic_cycles" }

// Hook ringan: normalisasi + mirror CHECK end > start.
func (m *AcademicCycleModel) BeforeSave(tx *gorm.DB) error {
	m.AcademicCycleName = strings.TrimSpace(m.AcademicCycleName)
	if !m.AcademicCycleEndDate.After(m.AcademicCycleStartDate) {
		return errors.New("academic_cycle_end_date must be > academic_cycle_start_date")
	}
	if !IsCycleState(m.AcademicCycleState) {
		return errors.New("academic_cycle_state is not a known state")
	}
	return nil
}
