// file: internals/features/portfolio/cycles/model/module_gate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleGateModel: satu baris per (cycle, module). Dibuat atomik bersama
// siklusnya, semua disabled.
type ModuleGateModel struct {
	ModuleGateID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_gate_id" json:"module_gate_id"`
	ModuleGateCycleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_gate_cycle_module;column:module_gate_cycle_id" json:"module_gate_cycle_id"`

	// data_intake | document_management | verification | reporting
	ModuleGateModule string `gorm:"type:varchar(30);not null;uniqueIndex:uq_module_gate_cycle_module;column:module_gate_module" json:"module_gate_module"`

	ModuleGateIsEnabled  bool       `gorm:"not null;default:false;column:module_gate_is_enabled" json:"module_gate_is_enabled"`
	ModuleGateEnabledAt  *time.Time `gorm:"type:timestamptz;column:module_gate_enabled_at" json:"module_gate_enabled_at,omitempty"`
	ModuleGateDisabledAt *time.Time `gorm:"type:timestamptz;column:module_gate_disabled_at" json:"module_gate_disabled_at,omitempty"`

	ModuleGateNote      *string    `gorm:"type:text;column:module_gate_note" json:"module_gate_note,omitempty"`
	ModuleGateChangedBy *uuid.UUID `gorm:"type:uuid;column:module_gate_changed_by" json:"module_gate_changed_by,omitempty"`

	ModuleGateCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:module_gate_created_at" json:"module_gate_created_at"`
	ModuleGateUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:module_gate_updated_at" json:"module_gate_updated_at"`
}

func (ModuleGateModel) TableName() string { return "module_gates" }

// LastChangedAt: timestamp perubahan terakhir untuk snapshot.
func (m *ModuleGateModel) LastChangedAt() *time.Time {
	if m.ModuleGateIsEnabled {
		return m.ModuleGateEnabledAt
	}
	return m.ModuleGateDisabledAt
}
