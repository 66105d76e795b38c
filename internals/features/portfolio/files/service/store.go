// file: internals/features/portfolio/files/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	fileModel "portofolioku_backend/internals/features/portfolio/files/model"
	nodeModel "portofolioku_backend/internals/features/portfolio/portfolios/model"
)

var (
	ErrFileNotFound     = errors.New("file bukti tidak ditemukan")
	ErrNodeNotFound     = errors.New("node portofolio tidak ditemukan")
	ErrInvalidFileState = errors.New("state verifikasi tidak dikenal")
)

// Store: kontrak persistence untuk file bukti + agregasi progres.
type Store interface {
	CreateFile(ctx context.Context, f *fileModel.FileArtifactModel) error
	FindFileByID(ctx context.Context, id uuid.UUID) (*fileModel.FileArtifactModel, error)
	SaveFile(ctx context.Context, f *fileModel.FileArtifactModel) error
	// ListFilesByNodeIDs: semua file non-deleted milik kumpulan node.
	ListFilesByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) ([]fileModel.FileArtifactModel, error)
	ListFilesByNode(ctx context.Context, nodeID uuid.UUID) ([]fileModel.FileArtifactModel, error)

	FindNodeByID(ctx context.Context, id uuid.UUID) (*nodeModel.PortfolioNodeModel, error)
	// FindRootNodeFor: root (level 0) dari assignment yang sama dengan node.
	FindRootNodeFor(ctx context.Context, node *nodeModel.PortfolioNodeModel) (*nodeModel.PortfolioNodeModel, error)
	// ListSubtreeNodeIDs: id semua node subtree (inklusif) via prefix path.
	ListSubtreeNodeIDs(ctx context.Context, node *nodeModel.PortfolioNodeModel) ([]uuid.UUID, error)
	UpdateNodeProgress(ctx context.Context, nodeID uuid.UUID, percentage float64) error
}
