// file: internals/features/portfolio/cycles/service/module_gate_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"portofolioku_backend/internals/constants"
	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

// newActiveCycle: siklus sampai state active (data_intake sudah enabled).
func newActiveCycle(t *testing.T, store *memStore) uuid.UUID {
	t.Helper()
	svc := NewCycleStateService(store)
	cycle, err := svc.Create(context.Background(), testCreateInput("2026 Genap"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	advanceTo(t, svc, cycle.AcademicCycleID, model.CycleStateActive)
	return cycle.AcademicCycleID
}

func TestSetEnabledRequiresActiveCycle(t *testing.T) {
	store := newMemStore()
	cycleSvc := NewCycleStateService(store)
	gateSvc := NewModuleGateService(store)
	ctx := context.Background()

	cycle, _ := cycleSvc.Create(ctx, testCreateInput("2026 Genap"))
	_, err := gateSvc.SetEnabled(ctx, cycle.AcademicCycleID, constants.ModuleDataIntake, true, nil, uuid.New())
	if !errors.Is(err, ErrCycleNotActive) {
		t.Errorf("err = %v, mau ErrCycleNotActive", err)
	}
}

func TestSetEnabledUnknownModule(t *testing.T) {
	store := newMemStore()
	cycleID := newActiveCycle(t, store)
	gateSvc := NewModuleGateService(store)

	_, err := gateSvc.SetEnabled(context.Background(), cycleID, "grading", true, nil, uuid.New())
	if !errors.Is(err, ErrUnknownModule) {
		t.Errorf("err = %v, mau ErrUnknownModule", err)
	}
}

func TestEnableOutOfOrder(t *testing.T) {
	store := newMemStore()
	cycleID := newActiveCycle(t, store)
	gateSvc := NewModuleGateService(store)
	ctx := context.Background()
	actor := uuid.New()

	// Setelah aktivasi hanya data_intake yang enabled; modul mana pun
	// selain document_management belum boleh dinyalakan.
	for _, m := range []string{constants.ModuleVerification, constants.ModuleReporting} {
		if _, err := gateSvc.SetEnabled(ctx, cycleID, m, true, nil, actor); !errors.Is(err, ErrSequenceViolation) {
			t.Errorf("enable %s: err = %v, mau ErrSequenceViolation", m, err)
		}
	}
}

func TestEnableInOrder(t *testing.T) {
	store := newMemStore()
	cycleID := newActiveCycle(t, store)
	gateSvc := NewModuleGateService(store)
	ctx := context.Background()
	actor := uuid.New()
	note := "dibuka setelah rapat prodi"

	for _, m := range []string{constants.ModuleDocumentManagement, constants.ModuleVerification, constants.ModuleReporting} {
		gate, err := gateSvc.SetEnabled(ctx, cycleID, m, true, &note, actor)
		if err != nil {
			t.Fatalf("enable %s: %v", m, err)
		}
		if !gate.ModuleGateIsEnabled || gate.ModuleGateEnabledAt == nil {
			t.Errorf("gate %s: enabled=%v enabled_at=%v", m, gate.ModuleGateIsEnabled, gate.ModuleGateEnabledAt)
		}
		if gate.ModuleGateChangedBy == nil || *gate.ModuleGateChangedBy != actor {
			t.Errorf("gate %s: changed_by tidak terekam", m)
		}
	}

	snap, err := gateSvc.Snapshot(ctx, cycleID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap) != len(constants.ModuleSequence) {
		t.Fatalf("snapshot berisi %d modul, mau %d", len(snap), len(constants.ModuleSequence))
	}
	for _, m := range constants.ModuleSequence {
		info, ok := snap[m]
		if !ok {
			t.Fatalf("modul %s tidak ada di snapshot", m)
		}
		if !info.Enabled {
			t.Errorf("modul %s disabled di snapshot, mau enabled", m)
		}
		if info.LastChangedAt == nil {
			t.Errorf("modul %s tanpa last_changed_at", m)
		}
	}
}

func TestDisableOutOfOrder(t *testing.T) {
	store := newMemStore()
	cycleID := newActiveCycle(t, store)
	gateSvc := NewModuleGateService(store)
	ctx := context.Background()
	actor := uuid.New()

	if _, err := gateSvc.SetEnabled(ctx, cycleID, constants.ModuleDocumentManagement, true, nil, actor); err != nil {
		t.Fatalf("enable document_management: %v", err)
	}
	if _, err := gateSvc.SetEnabled(ctx, cycleID, constants.ModuleVerification, true, nil, actor); err != nil {
		t.Fatalf("enable verification: %v", err)
	}

	// verification masih enabled → document_management belum boleh dimatikan.
	if _, err := gateSvc.SetEnabled(ctx, cycleID, constants.ModuleDocumentManagement, false, nil, actor); !errors.Is(err, ErrSequenceViolation) {
		t.Errorf("disable document_management: err = %v, mau ErrSequenceViolation", err)
	}

	// Urut mundur: matikan verification dulu, baru document_management.
	gate, err := gateSvc.SetEnabled(ctx, cycleID, constants.ModuleVerification, false, nil, actor)
	if err != nil {
		t.Fatalf("disable verification: %v", err)
	}
	if gate.ModuleGateIsEnabled || gate.ModuleGateDisabledAt == nil {
		t.Errorf("gate verification: enabled=%v disabled_at=%v", gate.ModuleGateIsEnabled, gate.ModuleGateDisabledAt)
	}
	if _, err := gateSvc.SetEnabled(ctx, cycleID, constants.ModuleDocumentManagement, false, nil, actor); err != nil {
		t.Errorf("disable document_management setelah verification mati: %v", err)
	}
}

func TestIsEnabled(t *testing.T) {
	store := newMemStore()
	cycleID := newActiveCycle(t, store)
	gateSvc := NewModuleGateService(store)
	ctx := context.Background()

	on, err := gateSvc.IsEnabled(ctx, cycleID, constants.ModuleDataIntake)
	if err != nil || !on {
		t.Errorf("data_intake: on=%v err=%v, mau true", on, err)
	}
	on, err = gateSvc.IsEnabled(ctx, cycleID, constants.ModuleReporting)
	if err != nil || on {
		t.Errorf("reporting: on=%v err=%v, mau false", on, err)
	}
	if _, err := gateSvc.IsEnabled(ctx, cycleID, "grading"); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("modul tak dikenal: err = %v, mau ErrUnknownModule", err)
	}
}
