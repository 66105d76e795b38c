// file: internals/features/portfolio/cycles/dto/cycle_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"portofolioku_backend/internals/features/portfolio/cycles/model"
	"portofolioku_backend/internals/features/portfolio/cycles/service"
)

// =======================
// Request DTO
// =======================

type CycleCreateDTO struct {
	AcademicCycleName        string  `json:"academic_cycle_name" validate:"required,min=3,max=50"`
	AcademicCycleDescription *string `json:"academic_cycle_description,omitempty"`
	// Example: "2025-I"
	AcademicCycleSemesterLabel string         `json:"academic_cycle_semester_label" validate:"required,min=4,max=20"`
	AcademicCycleYear          int            `json:"academic_cycle_year"          validate:"required,min=2000,max=2100"`
	AcademicCycleStartDate     time.Time      `json:"academic_cycle_start_date"    validate:"required"`
	AcademicCycleEndDate       time.Time      `json:"academic_cycle_end_date"      validate:"required,gtfield=AcademicCycleStartDate"`
	AcademicCycleConfig        datatypes.JSON `json:"academic_cycle_config,omitempty"`
}

func (p *CycleCreateDTO) Normalize() {
	p.AcademicCycleName = strings.TrimSpace(p.AcademicCycleName)
	p.AcademicCycleSemesterLabel = strings.TrimSpace(p.AcademicCycleSemesterLabel)
}

func (p *CycleCreateDTO) ToInput(creator uuid.UUID) service.CreateCycleInput {
	return service.CreateCycleInput{
		Name:          p.AcademicCycleName,
		Description:   p.AcademicCycleDescription,
		StartDate:     p.AcademicCycleStartDate,
		EndDate:       p.AcademicCycleEndDate,
		SemesterLabel: p.AcademicCycleSemesterLabel,
		Year:          p.AcademicCycleYear,
		Config:        p.AcademicCycleConfig,
		CreatedBy:     creator,
	}
}

type CycleTransitionDTO struct {
	TargetState string `json:"target_state" validate:"required,oneof=preparation initialization active verification finalization archived"`
}

type ModuleGateToggleDTO struct {
	Enabled bool    `json:"enabled"`
	Note    *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// =======================
// Response DTO
// =======================

type CycleResponseDTO struct {
	AcademicCycleID            uuid.UUID      `json:"academic_cycle_id"`
	AcademicCycleName          string         `json:"academic_cycle_name"`
	AcademicCycleDescription   *string        `json:"academic_cycle_description,omitempty"`
	AcademicCycleState         string         `json:"academic_cycle_state"`
	AcademicCycleSemesterLabel string         `json:"academic_cycle_semester_label"`
	AcademicCycleYear          int            `json:"academic_cycle_year"`
	AcademicCycleStartDate     time.Time      `json:"academic_cycle_start_date"`
	AcademicCycleEndDate       time.Time      `json:"academic_cycle_end_date"`
	AcademicCycleClosedAt      *time.Time     `json:"academic_cycle_closed_at,omitempty"`
	AcademicCycleConfig        datatypes.JSON `json:"academic_cycle_config,omitempty"`
	AcademicCycleCreatedAt     time.Time      `json:"academic_cycle_created_at"`
	AcademicCycleUpdatedAt     time.Time      `json:"academic_cycle_updated_at"`
}

func FromCycleModel(m *model.AcademicCycleModel) CycleResponseDTO {
	return CycleResponseDTO{
		AcademicCycleID:            m.AcademicCycleID,
		AcademicCycleName:          m.AcademicCycleName,
		AcademicCycleDescription:   m.AcademicCycleDescription,
		AcademicCycleState:         m.AcademicCycleState,
		AcademicCycleSemesterLabel: m.AcademicCycleSemesterLabel,
		AcademicCycleYear:          m.AcademicCycleYear,
		AcademicCycleStartDate:     m.AcademicCycleStartDate,
		AcademicCycleEndDate:       m.AcademicCycleEndDate,
		AcademicCycleClosedAt:      m.AcademicCycleClosedAt,
		AcademicCycleConfig:        m.AcademicCycleConfig,
		AcademicCycleCreatedAt:     m.AcademicCycleCreatedAt,
		AcademicCycleUpdatedAt:     m.AcademicCycleUpdatedAt,
	}
}

func FromCycleModels(ms []model.AcademicCycleModel) []CycleResponseDTO {
	out := make([]CycleResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromCycleModel(&ms[i]))
	}
	return out
}

type ModuleGateResponseDTO struct {
	ModuleGateModule     string     `json:"module_gate_module"`
	ModuleGateIsEnabled  bool       `json:"module_gate_is_enabled"`
	ModuleGateEnabledAt  *time.Time `json:"module_gate_enabled_at,omitempty"`
	ModuleGateDisabledAt *time.Time `json:"module_gate_disabled_at,omitempty"`
	ModuleGateNote       *string    `json:"module_gate_note,omitempty"`
	ModuleGateChangedBy  *uuid.UUID `json:"module_gate_changed_by,omitempty"`
}

func FromModuleGateModel(m *model.ModuleGateModel) ModuleGateResponseDTO {
	return ModuleGateResponseDTO{
		ModuleGateModule:     m.ModuleGateModule,
		ModuleGateIsEnabled:  m.ModuleGateIsEnabled,
		ModuleGateEnabledAt:  m.ModuleGateEnabledAt,
		ModuleGateDisabledAt: m.ModuleGateDisabledAt,
		ModuleGateNote:       m.ModuleGateNote,
		ModuleGateChangedBy:  m.ModuleGateChangedBy,
	}
}
