// file: internals/features/portfolio/portfolios/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/portfolios/model"
)

var (
	ErrNodeNotFound = errors.New("node portofolio tidak ditemukan")
	// ErrRootExists dikembalikan store saat insert root kena unique
	// constraint; builder menerjemahkannya jadi no-op idempoten.
	ErrRootExists = errors.New("root portofolio sudah ada untuk assignment ini")
)

// Store: kontrak persistence pohon portofolio.
type Store interface {
	WithTx(ctx context.Context, fn func(txStore Store) error) error

	CreateNode(ctx context.Context, node *model.PortfolioNodeModel) error
	FindNodeByID(ctx context.Context, id uuid.UUID) (*model.PortfolioNodeModel, error)
	// FindRootNode: root (level 0) untuk satu assignment; ErrNodeNotFound kalau belum ada.
	FindRootNode(ctx context.Context, teacherID, subjectID, cycleID uuid.UUID, group string) (*model.PortfolioNodeModel, error)
	// ListSubtree: semua node subtree milik node (inklusif), via prefix path
	// dalam scope assignment yang sama.
	ListSubtree(ctx context.Context, node *model.PortfolioNodeModel) ([]model.PortfolioNodeModel, error)
	SaveNode(ctx context.Context, node *model.PortfolioNodeModel) error
}
