// file: internals/features/portfolio/portfolios/repository/portfolio_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portofolioku_backend/internals/features/portfolio/portfolios/model"
	"portofolioku_backend/internals/features/portfolio/portfolios/service"
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

func (s *GormStore) CreateNode(ctx context.Context, node *model.PortfolioNodeModel) error {
	if err := s.db.WithContext(ctx).Create(node).Error; err != nil {
		if node.IsRoot() && helper.IsDuplicateKeyErr(err) {
			return service.ErrRootExists
		}
		return err
	}
	return nil
}

func (s *GormStore) FindNodeByID(ctx context.Context, id uuid.UUID) (*model.PortfolioNodeModel, error) {
	var m model.PortfolioNodeModel
	err := s.db.WithContext(ctx).
		First(&m, "portfolio_node_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) FindRootNode(ctx context.Context, teacherID, subjectID, cycleID uuid.UUID, group string) (*model.PortfolioNodeModel, error) {
	var m model.PortfolioNodeModel
	err := s.db.WithContext(ctx).
		Where("portfolio_node_teacher_id = ? AND portfolio_node_subject_id = ? AND portfolio_node_cycle_id = ? AND portfolio_node_group = ? AND portfolio_node_level = 0",
			teacherID, subjectID, cycleID, group).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListSubtree(ctx context.Context, node *model.PortfolioNodeModel) ([]model.PortfolioNodeModel, error) {
	var out []model.PortfolioNodeModel
	err := s.db.WithContext(ctx).
		Where("portfolio_node_teacher_id = ? AND portfolio_node_subject_id = ? AND portfolio_node_cycle_id = ? AND portfolio_node_group = ?",
			node.PortfolioNodeTeacherID, node.PortfolioNodeSubjectID, node.PortfolioNodeCycleID, node.PortfolioNodeGroup).
		Where("portfolio_node_path = ? OR portfolio_node_path LIKE ?",
			node.PortfolioNodePath, node.PortfolioNodePath+"/%").
		Order("portfolio_node_path ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) SaveNode(ctx context.Context, node *model.PortfolioNodeModel) error {
	return s.db.WithContext(ctx).Save(node).Error
}
