// file: internals/features/portfolio/cycles/service/store_mem_test.go
package service

import (
	"context"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/cycles/model"
)

// memStore: fake in-memory untuk test service. Tidak transaksional —
// test yang butuh rollback pakai skenario yang gagal sebelum mutasi.
type memStore struct {
	cycles    map[uuid.UUID]model.AcademicCycleModel
	gates     map[uuid.UUID]model.ModuleGateModel
	semesters map[uuid.UUID]model.SemesterModel
}

func newMemStore() *memStore {
	return &memStore{
		cycles:    make(map[uuid.UUID]model.AcademicCycleModel),
		gates:     make(map[uuid.UUID]model.ModuleGateModel),
		semesters: make(map[uuid.UUID]model.SemesterModel),
	}
}

func (m *memStore) WithTx(ctx context.Context, fn func(txStore Store) error) error {
	return fn(m)
}

func (m *memStore) CreateCycle(ctx context.Context, c *model.AcademicCycleModel) error {
	for _, existing := range m.cycles {
		if existing.AcademicCycleName == c.AcademicCycleName {
			return ErrDuplicateName
		}
	}
	if c.AcademicCycleID == uuid.Nil {
		c.AcademicCycleID = uuid.New()
	}
	m.cycles[c.AcademicCycleID] = *c
	return nil
}

func (m *memStore) FindCycleByID(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error) {
	c, ok := m.cycles[id]
	if !ok {
		return nil, ErrCycleNotFound
	}
	out := c
	return &out, nil
}

func (m *memStore) FindCycleByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.AcademicCycleModel, error) {
	return m.FindCycleByID(ctx, id)
}

func (m *memStore) FindCycleByName(ctx context.Context, name string) (*model.AcademicCycleModel, error) {
	for _, c := range m.cycles {
		if c.AcademicCycleName == name {
			out := c
			return &out, nil
		}
	}
	return nil, ErrCycleNotFound
}

func (m *memStore) ListCyclesInStates(ctx context.Context, states []string, forUpdate bool) ([]model.AcademicCycleModel, error) {
	var out []model.AcademicCycleModel
	for _, c := range m.cycles {
		for _, s := range states {
			if c.AcademicCycleState == s {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (m *memStore) ListCycles(ctx context.Context, offset, limit int) ([]model.AcademicCycleModel, int64, error) {
	var out []model.AcademicCycleModel
	for _, c := range m.cycles {
		out = append(out, c)
	}
	return out, int64(len(m.cycles)), nil
}

func (m *memStore) SaveCycle(ctx context.Context, c *model.AcademicCycleModel) error {
	// Cermin uq_academic_cycle_exclusive_state: maksimal satu baris
	// active dan satu baris verification.
	switch c.AcademicCycleState {
	case model.CycleStateActive, model.CycleStateVerification:
		for id, other := range m.cycles {
			if id == c.AcademicCycleID || other.AcademicCycleState != c.AcademicCycleState {
				continue
			}
			if c.AcademicCycleState == model.CycleStateActive {
				return ErrConcurrentActivation
			}
			return ErrConcurrentVerification
		}
	}
	m.cycles[c.AcademicCycleID] = *c
	return nil
}

func (m *memStore) DeleteCycle(ctx context.Context, id uuid.UUID) error {
	delete(m.cycles, id)
	return nil
}

func (m *memStore) CreateModuleGates(ctx context.Context, gates []model.ModuleGateModel) error {
	for i := range gates {
		if gates[i].ModuleGateID == uuid.Nil {
			gates[i].ModuleGateID = uuid.New()
		}
		m.gates[gates[i].ModuleGateID] = gates[i]
	}
	return nil
}

func (m *memStore) ListModuleGates(ctx context.Context, cycleID uuid.UUID) ([]model.ModuleGateModel, error) {
	var out []model.ModuleGateModel
	for _, g := range m.gates {
		if g.ModuleGateCycleID == cycleID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) SaveModuleGate(ctx context.Context, g *model.ModuleGateModel) error {
	m.gates[g.ModuleGateID] = *g
	return nil
}

func (m *memStore) DeleteModuleGatesByCycle(ctx context.Context, cycleID uuid.UUID) error {
	for id, g := range m.gates {
		if g.ModuleGateCycleID == cycleID {
			delete(m.gates, id)
		}
	}
	return nil
}

func (m *memStore) CreateSemester(ctx context.Context, sem *model.SemesterModel) error {
	if sem.SemesterID == uuid.Nil {
		sem.SemesterID = uuid.New()
	}
	m.semesters[sem.SemesterID] = *sem
	return nil
}

func (m *memStore) FindSemesterByCycle(ctx context.Context, cycleID uuid.UUID) (*model.SemesterModel, error) {
	for _, s := range m.semesters {
		if s.SemesterCycleID == cycleID {
			out := s
			return &out, nil
		}
	}
	return nil, ErrCycleNotFound
}

func (m *memStore) SaveSemester(ctx context.Context, sem *model.SemesterModel) error {
	m.semesters[sem.SemesterID] = *sem
	return nil
}

func (m *memStore) DeleteSemestersByCycle(ctx context.Context, cycleID uuid.UUID) error {
	for id, s := range m.semesters {
		if s.SemesterCycleID == cycleID {
			delete(m.semesters, id)
		}
	}
	return nil
}
