// file: internals/features/portfolio/cycles/service/module_gate_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/constants"
	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

/* ============================================
   ModuleGateService — gate per modul per siklus
============================================ */

type ModuleGateService struct {
	store Store
}

func NewModuleGateService(store Store) *ModuleGateService {
	return &ModuleGateService{store: store}
}

type GateInfo struct {
	Enabled       bool       `json:"enabled"`
	LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
	Note          *string    `json:"note,omitempty"`
}

// SetEnabled: toggle gate satu modul. Hanya pada siklus active. Enable
// wajib urut maju (semua modul sebelumnya sudah enabled), disable wajib
// urut mundur (tidak ada modul sesudahnya yang masih enabled).
func (s *ModuleGateService) SetEnabled(ctx context.Context, cycleID uuid.UUID, module string, enabled bool, note *string, actor uuid.UUID) (*model.ModuleGateModel, error) {
	idx := constants.ModuleIndex(module)
	if idx < 0 {
		return nil, ErrUnknownModule
	}

	var result *model.ModuleGateModel
	err := s.store.WithTx(ctx, func(tx Store) error {
		cycle, err := tx.FindCycleByID(ctx, cycleID)
		if err != nil {
			return err
		}
		if cycle.AcademicCycleState != model.CycleStateActive {
			return ErrCycleNotActive
		}

		gates, err := tx.ListModuleGates(ctx, cycleID)
		if err != nil {
			return err
		}
		byModule := make(map[string]*model.ModuleGateModel, len(gates))
		for i := range gates {
			byModule[gates[i].ModuleGateModule] = &gates[i]
		}

		if enabled {
			for i := 0; i < idx; i++ {
				prev := byModule[constants.ModuleSequence[i]]
				if prev == nil || !prev.ModuleGateIsEnabled {
					return ErrSequenceViolation
				}
			}
		} else {
			for i := idx + 1; i < len(constants.ModuleSequence); i++ {
				next := byModule[constants.ModuleSequence[i]]
				if next != nil && next.ModuleGateIsEnabled {
					return ErrSequenceViolation
				}
			}
		}

		gate := byModule[module]
		if gate == nil {
			return ErrUnknownModule
		}

		now := time.Now()
		gate.ModuleGateIsEnabled = enabled
		gate.ModuleGateNote = note
		gate.ModuleGateChangedBy = &actor
		if enabled {
			gate.ModuleGateEnabledAt = &now
		} else {
			gate.ModuleGateDisabledAt = &now
		}
		if err := tx.SaveModuleGate(ctx, gate); err != nil {
			return err
		}
		result = gate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Snapshot: peta module -> info gate. Read-only, tanpa side effect.
func (s *ModuleGateService) Snapshot(ctx context.Context, cycleID uuid.UUID) (map[string]GateInfo, error) {
	if _, err := s.store.FindCycleByID(ctx, cycleID); err != nil {
		return nil, err
	}
	gates, err := s.store.ListModuleGates(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]GateInfo, len(gates))
	for i := range gates {
		g := &gates[i]
		out[g.ModuleGateModule] = GateInfo{
			Enabled:       g.ModuleGateIsEnabled,
			LastChangedAt: g.LastChangedAt(),
			Note:          g.ModuleGateNote,
		}
	}
	return out, nil
}

// IsEnabled: cek cepat satu gate (dipakai fitur lain sebagai prasyarat,
// mis. generate portofolio butuh document_management enabled).
func (s *ModuleGateService) IsEnabled(ctx context.Context, cycleID uuid.UUID, module string) (bool, error) {
	gates, err := s.store.ListModuleGates(ctx, cycleID)
	if err != nil {
		return false, err
	}
	for i := range gates {
		if gates[i].ModuleGateModule == module {
			return gates[i].ModuleGateIsEnabled, nil
		}
	}
	return false, ErrUnknownModule
}

// enableGateTx: enable satu gate di dalam transaksi yang sudah berjalan.
// Dipakai aktivasi siklus untuk menyalakan data_intake tanpa membuka
// transaksi baru.
func enableGateTx(ctx context.Context, tx Store, cycleID uuid.UUID, module string, actor *uuid.UUID, note *string, now time.Time) error {
	gates, err := tx.ListModuleGates(ctx, cycleID)
	if err != nil {
		return err
	}
	for i := range gates {
		if gates[i].ModuleGateModule != module {
			continue
		}
		gates[i].ModuleGateIsEnabled = true
		gates[i].ModuleGateEnabledAt = &now
		gates[i].ModuleGateChangedBy = actor
		gates[i].ModuleGateNote = note
		return tx.SaveModuleGate(ctx, &gates[i])
	}
	return ErrUnknownModule
}
