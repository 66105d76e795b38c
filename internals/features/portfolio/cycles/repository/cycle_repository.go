// file: internals/features/portfolio/cycles/repository/cycle_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portofolioku_backend/internals/features/portfolio/cycles/model"
	"portofolioku_backend/internals/features/portfolio/cycles/service"
	helper "portofolioku_backend/internals/helpers"
)

// GormStore: implementasi service.Store di atas GORM/Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ service.Store = (*GormStore)(nil)

func (s *GormStore) WithTx(ctx context.Context, fn func(txStore service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

/* ======================= Cycles ======================= */

func (s *GormStore) CreateCycle(ctx context.Context, cycle *model.AcademicCycleModel) error {
	if err := s.db.WithContext(ctx).Create(cycle).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return service.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *GormStore) FindCycleByID(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error) {
	var m model.AcademicCycleModel
	err := s.db.WithContext(ctx).
		First(&m, "academic_cycle_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrCycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) FindCycleByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error) {
	var m model.AcademicCycleModel
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "academic_cycle_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrCycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) FindCycleByName(ctx context.Context, name string) (*model.AcademicCycleModel, error) {
	var m model.AcademicCycleModel
	err := s.db.WithContext(ctx).
		First(&m, "academic_cycle_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrCycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListCyclesInStates(ctx context.Context, states []string, forUpdate bool) ([]model.AcademicCycleModel, error) {
	q := s.db.WithContext(ctx).Where("academic_cycle_state IN ?", states)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out []model.AcademicCycleModel
	if err := q.Order("academic_cycle_created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) ListCycles(ctx context.Context, offset, limit int) ([]model.AcademicCycleModel, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.AcademicCycleModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []model.AcademicCycleModel
	err := s.db.WithContext(ctx).
		Order("academic_cycle_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *GormStore) SaveCycle(ctx context.Context, cycle *model.AcademicCycleModel) error {
	if err := s.db.WithContext(ctx).Save(cycle).Error; err != nil {
		// uq_academic_cycle_exclusive_state: pemenang race sudah commit
		// active/verification duluan, scan predikat kita tidak melihatnya.
		if helper.IsDuplicateKeyErr(err) {
			switch cycle.AcademicCycleState {
			case model.CycleStateActive:
				return service.ErrConcurrentActivation
			case model.CycleStateVerification:
				return service.ErrConcurrentVerification
			}
			return service.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *GormStore) DeleteCycle(ctx context.Context, id uuid.UUID) error {
	// Unscoped: preparation belum pernah dipakai, boleh hard delete.
	return s.db.WithContext(ctx).Unscoped().
		Delete(&model.AcademicCycleModel{}, "academic_cycle_id = ?", id).Error
}

/* ======================= Module gates ======================= */

func (s *GormStore) CreateModuleGates(ctx context.Context, gates []model.ModuleGateModel) error {
	return s.db.WithContext(ctx).Create(&gates).Error
}

func (s *GormStore) ListModuleGates(ctx context.Context, cycleID uuid.UUID) ([]model.ModuleGateModel, error) {
	var out []model.ModuleGateModel
	err := s.db.WithContext(ctx).
		Where("module_gate_cycle_id = ?", cycleID).
		Order("module_gate_module ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) SaveModuleGate(ctx context.Context, gate *model.ModuleGateModel) error {
	return s.db.WithContext(ctx).Save(gate).Error
}

func (s *GormStore) DeleteModuleGatesByCycle(ctx context.Context, cycleID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Delete(&model.ModuleGateModel{}, "module_gate_cycle_id = ?", cycleID).Error
}

/* ======================= Semesters ======================= */

func (s *GormStore) CreateSemester(ctx context.Context, sem *model.SemesterModel) error {
	return s.db.WithContext(ctx).Create(sem).Error
}

func (s *GormStore) FindSemesterByCycle(ctx context.Context, cycleID uuid.UUID) (*model.SemesterModel, error) {
	var m model.SemesterModel
	err := s.db.WithContext(ctx).
		First(&m, "semester_cycle_id = ?", cycleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrCycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) SaveSemester(ctx context.Context, sem *model.SemesterModel) error {
	return s.db.WithContext(ctx).Save(sem).Error
}

func (s *GormStore) DeleteSemestersByCycle(ctx context.Context, cycleID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Delete(&model.SemesterModel{}, "semester_cycle_id = ?", cycleID).Error
}
