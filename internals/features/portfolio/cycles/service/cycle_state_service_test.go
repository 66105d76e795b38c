// file: internals/features/portfolio/cycles/service/cycle_state_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/constants"
	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

func testCreateInput(name string) CreateCycleInput {
	return CreateCycleInput{
		Name:          name,
		StartDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		SemesterLabel: "genap",
		Year:          2026,
		CreatedBy:     uuid.New(),
	}
}

// advanceTo: jalankan transisi berurutan sampai state target.
func advanceTo(t *testing.T, svc *CycleStateService, id uuid.UUID, target string) *model.AcademicCycleModel {
	t.Helper()
	ctx := context.Background()
	cycle, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	for cycle.AcademicCycleState != target {
		next := model.NextCycleState(cycle.AcademicCycleState)
		if next == "" {
			t.Fatalf("tidak ada jalur dari %s ke %s", cycle.AcademicCycleState, target)
		}
		cycle, err = svc.Transition(ctx, id, next, uuid.New())
		if err != nil {
			t.Fatalf("Transition ke %s: %v", next, err)
		}
	}
	return cycle
}

func TestCreateCycle(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	cycle, err := svc.Create(ctx, testCreateInput("2026 Genap"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cycle.AcademicCycleState != model.CycleStatePreparation {
		t.Errorf("state awal = %s, mau %s", cycle.AcademicCycleState, model.CycleStatePreparation)
	}

	gates, err := store.ListModuleGates(ctx, cycle.AcademicCycleID)
	if err != nil {
		t.Fatalf("ListModuleGates: %v", err)
	}
	if len(gates) != len(constants.ModuleSequence) {
		t.Fatalf("jumlah gate = %d, mau %d", len(gates), len(constants.ModuleSequence))
	}
	for _, g := range gates {
		if g.ModuleGateIsEnabled {
			t.Errorf("gate %s enabled saat create, mau disabled", g.ModuleGateModule)
		}
	}

	sem, err := store.FindSemesterByCycle(ctx, cycle.AcademicCycleID)
	if err != nil {
		t.Fatalf("FindSemesterByCycle: %v", err)
	}
	if sem.SemesterIsActive {
		t.Error("semester aktif saat create, mau inactive")
	}
}

func TestCreateCycleDuplicateName(t *testing.T) {
	svc := NewCycleStateService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, testCreateInput("2026 Genap")); err != nil {
		t.Fatalf("Create pertama: %v", err)
	}
	_, err := svc.Create(ctx, testCreateInput("2026 Genap"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, mau ErrDuplicateName", err)
	}
}

func TestCreateCycleInvalidDateRange(t *testing.T) {
	svc := NewCycleStateService(newMemStore())
	in := testCreateInput("2026 Genap")
	in.EndDate = in.StartDate

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("err = %v, mau ErrInvalidDateRange", err)
	}
}

func TestTransitionSuccessorOnly(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	cycle, err := svc.Create(ctx, testCreateInput("2026 Genap"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cases := []struct {
		name   string
		target string
	}{
		{"lompat dua langkah", model.CycleStateActive},
		{"mundur", model.CycleStateArchived},
		{"state tak dikenal", "paused"},
		{"tetap di state sama", model.CycleStatePreparation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Transition(ctx, cycle.AcademicCycleID, tc.target, uuid.New())
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("err = %v, mau ErrInvalidTransition", err)
			}
		})
	}

	got, err := svc.Transition(ctx, cycle.AcademicCycleID, model.CycleStateInitialization, uuid.New())
	if err != nil {
		t.Fatalf("Transition ke initialization: %v", err)
	}
	if got.AcademicCycleState != model.CycleStateInitialization {
		t.Errorf("state = %s, mau initialization", got.AcademicCycleState)
	}
}

func TestActivationArchivesPreviousActive(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	a, _ := svc.Create(ctx, testCreateInput("2025 Ganjil"))
	b, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	advanceTo(t, svc, a.AcademicCycleID, model.CycleStateActive)
	advanceTo(t, svc, b.AcademicCycleID, model.CycleStateActive)

	gotA, _ := svc.GetByID(ctx, a.AcademicCycleID)
	gotB, _ := svc.GetByID(ctx, b.AcademicCycleID)
	if gotA.AcademicCycleState != model.CycleStateArchived {
		t.Errorf("siklus lama = %s, mau archived", gotA.AcademicCycleState)
	}
	if gotB.AcademicCycleState != model.CycleStateActive {
		t.Errorf("siklus baru = %s, mau active", gotB.AcademicCycleState)
	}

	// Aktivasi juga menyalakan semester dan gate data_intake milik pemenang.
	sem, err := store.FindSemesterByCycle(ctx, b.AcademicCycleID)
	if err != nil {
		t.Fatalf("FindSemesterByCycle: %v", err)
	}
	if !sem.SemesterIsActive {
		t.Error("semester siklus aktif belum dinyalakan")
	}
	gates, _ := store.ListModuleGates(ctx, b.AcademicCycleID)
	for _, g := range gates {
		wantEnabled := g.ModuleGateModule == constants.ModuleDataIntake
		if g.ModuleGateIsEnabled != wantEnabled {
			t.Errorf("gate %s enabled=%v, mau %v", g.ModuleGateModule, g.ModuleGateIsEnabled, wantEnabled)
		}
		if wantEnabled && g.ModuleGateEnabledAt == nil {
			t.Errorf("gate %s enabled tanpa enabled_at", g.ModuleGateModule)
		}
	}
}

// racingStore mensimulasikan kalah race aktivasi: saat baris target dikunci,
// pemenang lain sudah mengarsipkan siklus kita.
type racingStore struct {
	*memStore
}

func (r *racingStore) WithTx(ctx context.Context, fn func(txStore Store) error) error {
	return fn(r)
}

func (r *racingStore) FindCycleByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error) {
	c, err := r.memStore.FindCycleByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	c.AcademicCycleState = model.CycleStateArchived
	return c, nil
}

func TestActivationLoserAfterLock(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	cycle, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	advanceTo(t, svc, cycle.AcademicCycleID, model.CycleStateInitialization)

	racingSvc := NewCycleStateService(&racingStore{memStore: store})
	_, err := racingSvc.Transition(ctx, cycle.AcademicCycleID, model.CycleStateActive, uuid.New())
	if !errors.Is(err, ErrConcurrentActivation) {
		t.Errorf("err = %v, mau ErrConcurrentActivation", err)
	}
}

// phantomStore menyembunyikan baris ber-state tertentu dari scan
// predikat: di bawah read-committed, pemenang yang sudah commit bisa
// tidak terlihat oleh ListCyclesInStates milik transaksi lain. Save
// tetap menegakkan constraint exclusive-state seperti di database.
type phantomStore struct {
	*memStore
	hidden string
}

func (p *phantomStore) WithTx(ctx context.Context, fn func(txStore Store) error) error {
	return fn(p)
}

func (p *phantomStore) ListCyclesInStates(ctx context.Context, states []string, forUpdate bool) ([]model.AcademicCycleModel, error) {
	all, err := p.memStore.ListCyclesInStates(ctx, states, forUpdate)
	if err != nil {
		return nil, err
	}
	var out []model.AcademicCycleModel
	for _, c := range all {
		if c.AcademicCycleState != p.hidden {
			out = append(out, c)
		}
	}
	return out, nil
}

// Dua aktivasi paralel saat nol baris active: lock predikat tidak
// memegang apa-apa, keduanya melihat nol active — yang commit kedua
// harus gagal di constraint, bukan ikut jadi active.
func TestActivationRaceBothSeeZeroActive(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	winner, _ := svc.Create(ctx, testCreateInput("2025 Ganjil"))
	advanceTo(t, svc, winner.AcademicCycleID, model.CycleStateActive)

	loser, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	advanceTo(t, svc, loser.AcademicCycleID, model.CycleStateInitialization)

	phantomSvc := NewCycleStateService(&phantomStore{memStore: store, hidden: model.CycleStateActive})
	_, err := phantomSvc.Transition(ctx, loser.AcademicCycleID, model.CycleStateActive, uuid.New())
	if !errors.Is(err, ErrConcurrentActivation) {
		t.Fatalf("err = %v, mau ErrConcurrentActivation", err)
	}

	gotWinner, _ := svc.GetByID(ctx, winner.AcademicCycleID)
	gotLoser, _ := svc.GetByID(ctx, loser.AcademicCycleID)
	if gotWinner.AcademicCycleState != model.CycleStateActive {
		t.Errorf("pemenang = %s, mau tetap active", gotWinner.AcademicCycleState)
	}
	if gotLoser.AcademicCycleState != model.CycleStateInitialization {
		t.Errorf("yang kalah = %s, mau tetap initialization", gotLoser.AcademicCycleState)
	}
}

func TestVerificationRaceBothSeeNone(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	winner, _ := svc.Create(ctx, testCreateInput("2025 Ganjil"))
	advanceTo(t, svc, winner.AcademicCycleID, model.CycleStateVerification)

	loser, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	advanceTo(t, svc, loser.AcademicCycleID, model.CycleStateActive)

	phantomSvc := NewCycleStateService(&phantomStore{memStore: store, hidden: model.CycleStateVerification})
	_, err := phantomSvc.Transition(ctx, loser.AcademicCycleID, model.CycleStateVerification, uuid.New())
	if !errors.Is(err, ErrConcurrentVerification) {
		t.Fatalf("err = %v, mau ErrConcurrentVerification", err)
	}
	got, _ := svc.GetByID(ctx, loser.AcademicCycleID)
	if got.AcademicCycleState != model.CycleStateActive {
		t.Errorf("yang kalah = %s, mau tetap active", got.AcademicCycleState)
	}
}

func TestVerificationSingleCycle(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	a, _ := svc.Create(ctx, testCreateInput("2025 Ganjil"))
	advanceTo(t, svc, a.AcademicCycleID, model.CycleStateVerification)

	// A sedang verification (bukan active), jadi aktivasi B tidak
	// mengarsipkannya — tapi B tetap tidak boleh ikut verification.
	b, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	advanceTo(t, svc, b.AcademicCycleID, model.CycleStateActive)

	_, err := svc.Transition(ctx, b.AcademicCycleID, model.CycleStateVerification, uuid.New())
	if !errors.Is(err, ErrConcurrentVerification) {
		t.Errorf("err = %v, mau ErrConcurrentVerification", err)
	}

	// Setelah A lanjut ke finalization, B boleh masuk verification.
	if _, err := svc.Transition(ctx, a.AcademicCycleID, model.CycleStateFinalization, uuid.New()); err != nil {
		t.Fatalf("Transition A ke finalization: %v", err)
	}
	if _, err := svc.Transition(ctx, b.AcademicCycleID, model.CycleStateVerification, uuid.New()); err != nil {
		t.Errorf("Transition B ke verification setelah A lewat: %v", err)
	}
}

func TestFinalizationStampsClosedAt(t *testing.T) {
	svc := NewCycleStateService(newMemStore())
	ctx := context.Background()

	cycle, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	got := advanceTo(t, svc, cycle.AcademicCycleID, model.CycleStateFinalization)
	if got.AcademicCycleClosedAt == nil {
		t.Error("closed_at kosong setelah finalization")
	}

	got = advanceTo(t, svc, cycle.AcademicCycleID, model.CycleStateArchived)
	if got.AcademicCycleState != model.CycleStateArchived {
		t.Errorf("state akhir = %s, mau archived", got.AcademicCycleState)
	}
	_, err := svc.Transition(ctx, cycle.AcademicCycleID, model.CycleStateArchived, uuid.New())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("transisi dari archived: err = %v, mau ErrInvalidTransition", err)
	}
}

func TestDeleteOnlyPreparation(t *testing.T) {
	store := newMemStore()
	svc := NewCycleStateService(store)
	ctx := context.Background()

	prep, _ := svc.Create(ctx, testCreateInput("2026 Genap"))
	if err := svc.Delete(ctx, prep.AcademicCycleID); err != nil {
		t.Fatalf("Delete preparation: %v", err)
	}
	if _, err := svc.GetByID(ctx, prep.AcademicCycleID); !errors.Is(err, ErrCycleNotFound) {
		t.Errorf("GetByID setelah delete: err = %v, mau ErrCycleNotFound", err)
	}
	if gates, _ := store.ListModuleGates(ctx, prep.AcademicCycleID); len(gates) != 0 {
		t.Errorf("gate tersisa setelah delete: %d", len(gates))
	}
	if _, err := store.FindSemesterByCycle(ctx, prep.AcademicCycleID); err == nil {
		t.Error("semester tersisa setelah delete")
	}

	started, _ := svc.Create(ctx, testCreateInput("2026 Ganjil"))
	advanceTo(t, svc, started.AcademicCycleID, model.CycleStateInitialization)
	if err := svc.Delete(ctx, started.AcademicCycleID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Delete initialization: err = %v, mau ErrInvalidState", err)
	}
}
