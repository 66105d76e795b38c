// file: internals/features/portfolio/cycles/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

// Store: kontrak persistence untuk state machine siklus + gate modul.
// Implementasi GORM ada di package repository; test memakai fake in-memory.
type Store interface {
	// WithTx menjalankan fn dalam satu transaksi database. Store yang
	// diterima fn terikat ke transaksi itu; error apa pun -> rollback total.
	WithTx(ctx context.Context, fn func(txStore Store) error) error

	CreateCycle(ctx context.Context, cycle *model.AcademicCycleModel) error
	FindCycleByID(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error)
	// FindCycleByIDForUpdate mengambil baris dengan row lock (SELECT ... FOR UPDATE).
	FindCycleByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error)
	FindCycleByName(ctx context.Context, name string) (*model.AcademicCycleModel, error)
	// ListCyclesInStates; forUpdate=true mengunci baris hasil untuk
	// menserialisasi aktivasi paralel.
	ListCyclesInStates(ctx context.Context, states []string, forUpdate bool) ([]model.AcademicCycleModel, error)
	ListCycles(ctx context.Context, offset, limit int) ([]model.AcademicCycleModel, int64, error)
	SaveCycle(ctx context.Context, cycle *model.AcademicCycleModel) error
	DeleteCycle(ctx context.Context, id uuid.UUID) error

	CreateModuleGates(ctx context.Context, gates []model.ModuleGateModel) error
	ListModuleGates(ctx context.Context, cycleID uuid.UUID) ([]model.ModuleGateModel, error)
	SaveModuleGate(ctx context.Context, gate *model.ModuleGateModel) error
	DeleteModuleGatesByCycle(ctx context.Context, cycleID uuid.UUID) error

	CreateSemester(ctx context.Context, sem *model.SemesterModel) error
	FindSemesterByCycle(ctx context.Context, cycleID uuid.UUID) (*model.SemesterModel, error)
	SaveSemester(ctx context.Context, sem *model.SemesterModel) error
	DeleteSemestersByCycle(ctx context.Context, cycleID uuid.UUID) error
}
