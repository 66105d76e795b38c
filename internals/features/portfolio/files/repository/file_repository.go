// file: internals/features/portfolio/files/repository/file_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fileModel "portofolioku_backend/internals/features/portfolio/files/model"
	"portofolioku_backend/internals/features/portfolio/files/service"
	nodeModel "portofolioku_backend/internals/features/portfolio/portfolios/model"
)

// GormStore: implementasi service.Store di atas GORM/Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ service.Store = (*GormStore)(nil)

/* ======================= Files ======================= */

func (s *GormStore) CreateFile(ctx context.Context, f *fileModel.FileArtifactModel) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *GormStore) FindFileByID(ctx context.Context, id uuid.UUID) (*fileModel.FileArtifactModel, error) {
	var m fileModel.FileArtifactModel
	err := s.db.WithContext(ctx).
		First(&m, "file_artifact_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) SaveFile(ctx context.Context, f *fileModel.FileArtifactModel) error {
	return s.db.WithContext(ctx).Save(f).Error
}

func (s *GormStore) ListFilesByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) ([]fileModel.FileArtifactModel, error) {
	if len(nodeIDs) == 0 {
		return nil, nil
	}
	var out []fileModel.FileArtifactModel
	err := s.db.WithContext(ctx).
		Where("file_artifact_node_id IN ?", nodeIDs).
		Where("file_artifact_state <> ?", fileModel.FileStateDeleted).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) ListFilesByNode(ctx context.Context, nodeID uuid.UUID) ([]fileModel.FileArtifactModel, error) {
	var out []fileModel.FileArtifactModel
	err := s.db.WithContext(ctx).
		Where("file_artifact_node_id = ?", nodeID).
		Where("file_artifact_state <> ?", fileModel.FileStateDeleted).
		Order("file_artifact_created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ======================= Nodes ======================= */

func (s *GormStore) FindNodeByID(ctx context.Context, id uuid.UUID) (*nodeModel.PortfolioNodeModel, error) {
	var m nodeModel.PortfolioNodeModel
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

func (s *GormStore) FindRootNodeFor(ctx context.Context, node *nodeModel.PortfolioNodeModel) (*nodeModel.PortfolioNodeModel, error) {
	if node.IsRoot() {
		return node, nil
	}
	var m nodeModel.PortfolioNodeModel
	err := s.db.WithContext(ctx).
		Where("portfolio_node_teacher_id = ? AND portfolio_node_subject_id = ? AND portfolio_node_cycle_id = ? AND portfolio_node_group = ? AND portfolio_node_level = 0",
			node.PortfolioNodeTeacherID, node.PortfolioNodeSubjectID, node.PortfolioNodeCycleID, node.PortfolioNodeGroup).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListSubtreeNodeIDs(ctx context.Context, node *nodeModel.PortfolioNodeModel) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&nodeModel.PortfolioNodeModel{}).
		Where("portfolio_node_teacher_id = ? AND portfolio_node_subject_id = ? AND portfolio_node_cycle_id = ? AND portfolio_node_group = ?",
			node.PortfolioNodeTeacherID, node.PortfolioNodeSubjectID, node.PortfolioNodeCycleID, node.PortfolioNodeGroup).
		Where("portfolio_node_path = ? OR portfolio_node_path LIKE ?",
			node.PortfolioNodePath, node.PortfolioNodePath+"/%").
		Pluck("portfolio_node_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormStore) UpdateNodeProgress(ctx context.Context, nodeID uuid.UUID, percentage float64) error {
	return s.db.WithContext(ctx).
		Model(&nodeModel.PortfolioNodeModel{}).
		Where("portfolio_node_id = ?", nodeID).
		Update("portfolio_node_progress_percentage", percentage).Error
}
