// file: internals/features/portfolio/cycles/service/cycle_state_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"portofolioku_backend/internals/constants"
	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

/* ============================================
   CycleStateService — lifecycle siklus akademik
============================================ */

type CycleStateService struct {
	store Store
}

func NewCycleStateService(store Store) *CycleStateService {
	return &CycleStateService{store: store}
}

type CreateCycleInput struct {
	Name          string
	Description   *string
	StartDate     time.Time
	EndDate       time.Time
	SemesterLabel string
	Year          int
	Config        datatypes.JSON
	CreatedBy     uuid.UUID
}

// Create: buat siklus baru (state preparation) + 4 gate modul disabled
// + 1 semester default inactive, semuanya dalam satu transaksi.
func (s *CycleStateService) Create(ctx context.Context, in CreateCycleInput) (*model.AcademicCycleModel, error) {
	in.Name = strings.TrimSpace(in.Name)
	if !in.EndDate.After(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	cycle := &model.AcademicCycleModel{
		AcademicCycleName:          in.Name,
		AcademicCycleDescription:   in.Description,
		AcademicCycleState:         model.CycleStatePreparation,
		AcademicCycleStartDate:     in.StartDate,
		AcademicCycleEndDate:       in.EndDate,
		AcademicCycleYear:          in.Year,
		AcademicCycleSemesterLabel: in.SemesterLabel,
		AcademicCycleConfig:        in.Config,
		AcademicCycleCreatedBy:     in.CreatedBy,
	}

	err := s.store.WithTx(ctx, func(tx Store) error {
		if existing, err := tx.FindCycleByName(ctx, in.Name); err != nil && !errors.Is(err, ErrCycleNotFound) {
			return err
		} else if existing != nil {
			return ErrDuplicateName
		}

		if err := tx.CreateCycle(ctx, cycle); err != nil {
			return err
		}

		gates := make([]model.ModuleGateModel, 0, len(constants.ModuleSequence))
		for _, m := range constants.ModuleSequence {
			gates = append(gates, model.ModuleGateModel{
				ModuleGateCycleID: cycle.AcademicCycleID,
				ModuleGateModule:  m,
			})
		}
		if err := tx.CreateModuleGates(ctx, gates); err != nil {
			return err
		}

		return tx.CreateSemester(ctx, &model.SemesterModel{
			SemesterCycleID:  cycle.AcademicCycleID,
			SemesterLabel:    in.SemesterLabel,
			SemesterYear:     in.Year,
			SemesterIsActive: false,
		})
	})
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// Transition: pindahkan siklus ke successor langsungnya. Side effect per
// target state:
//   - active:      arsipkan siklus active lain (single-active), aktifkan
//     semester, enable gate data_intake
//   - verification: tolak kalau ada siklus lain yang sedang verification
//   - finalization: stamp closed_at
func (s *CycleStateService) Transition(ctx context.Context, cycleID uuid.UUID, target string, actor uuid.UUID) (*model.AcademicCycleModel, error) {
	if !model.IsCycleState(target) {
		return nil, ErrInvalidTransition
	}

	var result *model.AcademicCycleModel
	err := s.store.WithTx(ctx, func(tx Store) error {
		cycle, err := tx.FindCycleByID(ctx, cycleID)
		if err != nil {
			return err
		}
		if model.NextCycleState(cycle.AcademicCycleState) != target {
			return ErrInvalidTransition
		}

		now := time.Now()

		switch target {
		case model.CycleStateActive:
			cycle, err = s.activateLocked(ctx, tx, cycleID, actor, now)
			if err != nil {
				return err
			}

		case model.CycleStateVerification:
			// Pre-check ramah (pesan error yang jelas); race yang lolos
			// scan ini ditangkap uq_academic_cycle_exclusive_state saat save.
			inVerification, err := tx.ListCyclesInStates(ctx, []string{model.CycleStateVerification}, false)
			if err != nil {
				return err
			}
			for i := range inVerification {
				if inVerification[i].AcademicCycleID != cycleID {
					return ErrConcurrentVerification
				}
			}
			cycle.AcademicCycleState = target
			if err := tx.SaveCycle(ctx, cycle); err != nil {
				return err
			}

		case model.CycleStateFinalization:
			cycle.AcademicCycleState = target
			cycle.AcademicCycleClosedAt = &now
			if err := tx.SaveCycle(ctx, cycle); err != nil {
				return err
			}

		default:
			cycle.AcademicCycleState = target
			if err := tx.SaveCycle(ctx, cycle); err != nil {
				return err
			}
		}

		result = cycle
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// activateLocked menegakkan invariant single-active di dalam transaksi:
// kunci semua baris active (serialisasi aktivasi paralel), validasi ulang
// state target setelah lock, arsipkan active lain, baru tandai active.
// Kalau nol baris active, lock predikat tidak memegang apa-apa dan dua
// aktivasi paralel bisa sama-sama lolos scan; partial unique index
// uq_academic_cycle_exclusive_state yang menggagalkan commit kedua —
// store menerjemahkannya jadi ErrConcurrentActivation.
func (s *CycleStateService) activateLocked(ctx context.Context, tx Store, cycleID uuid.UUID, actor uuid.UUID, now time.Time) (*model.AcademicCycleModel, error) {
	actives, err := tx.ListCyclesInStates(ctx, []string{model.CycleStateActive}, true)
	if err != nil {
		return nil, err
	}

	cycle, err := tx.FindCycleByIDForUpdate(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	// Revalidasi setelah menunggu lock: pemenang race bisa saja sudah
	// mengubah state kita.
	if model.NextCycleState(cycle.AcademicCycleState) != model.CycleStateActive {
		switch cycle.AcademicCycleState {
		case model.CycleStateActive, model.CycleStateArchived:
			return nil, ErrConcurrentActivation
		default:
			return nil, ErrInvalidTransition
		}
	}

	// Arsipkan dulu semua active lain, baru set target active (urutan ini
	// yang menjaga single-active di bawah read-committed).
	for i := range actives {
		if actives[i].AcademicCycleID == cycleID {
			continue
		}
		actives[i].AcademicCycleState = model.CycleStateArchived
		if err := tx.SaveCycle(ctx, &actives[i]); err != nil {
			return nil, err
		}
	}

	cycle.AcademicCycleState = model.CycleStateActive
	if err := tx.SaveCycle(ctx, cycle); err != nil {
		return nil, err
	}

	sem, err := tx.FindSemesterByCycle(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	sem.SemesterIsActive = true
	if err := tx.SaveSemester(ctx, sem); err != nil {
		return nil, err
	}

	if err := enableGateTx(ctx, tx, cycleID, constants.ModuleDataIntake, &actor, nil, now); err != nil {
		return nil, err
	}
	return cycle, nil
}

// Delete: hanya siklus preparation yang boleh dihapus; cascade ke gate
// modul dan semester dalam satu transaksi.
func (s *CycleStateService) Delete(ctx context.Context, cycleID uuid.UUID) error {
	return s.store.WithTx(ctx, func(tx Store) error {
		cycle, err := tx.FindCycleByID(ctx, cycleID)
		if err != nil {
			return err
		}
		if cycle.AcademicCycleState != model.CycleStatePreparation {
			return ErrInvalidState
		}
		if err := tx.DeleteModuleGatesByCycle(ctx, cycleID); err != nil {
			return err
		}
		if err := tx.DeleteSemestersByCycle(ctx, cycleID); err != nil {
			return err
		}
		return tx.DeleteCycle(ctx, cycleID)
	})
}

func (s *CycleStateService) GetByID(ctx context.Context, cycleID uuid.UUID) (*model.AcademicCycleModel, error) {
	return s.store.FindCycleByID(ctx, cycleID)
}

func (s *CycleStateService) List(ctx context.Context, offset, limit int) ([]model.AcademicCycleModel, int64, error) {
	return s.store.ListCycles(ctx, offset, limit)
}
