// file: internals/features/portfolio/portfolios/service/tree_builder_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/portfolios/model"
)

/* ============================================
   TreeBuilderService — generate pohon portofolio
============================================ */

type TreeBuilderService struct {
	store Store
	spec  SpecNode
}

func NewTreeBuilderService(store Store) *TreeBuilderService {
	return &TreeBuilderService{store: store, spec: PortfolioTreeSpec}
}

// BuildInput: assignment + SKS mata kuliah yang menentukan bentuk pohon.
type BuildInput struct {
	TeacherID uuid.UUID
	SubjectID uuid.UUID
	CycleID   uuid.UUID
	Group     string
	Credits   int
}

type BuildResult struct {
	Created   bool
	Root      *model.PortfolioNodeModel
	NodeCount int // jumlah node yang DIBUAT panggilan ini (0 kalau no-op)
}

// Build: materialisasi pohon sesuai spec, DFS, dalam SATU transaksi —
// pohon parsial tidak pernah terlihat. Idempoten: kalau root untuk
// assignment ini sudah ada, kembalikan root lama dengan Created=false.
// Race dua Build untuk tuple sama diamankan unique constraint pada root;
// yang kalah memperlakukan constraint violation sebagai "sudah dibuat".
func (s *TreeBuilderService) Build(ctx context.Context, in BuildInput) (BuildResult, error) {
	existing, err := s.store.FindRootNode(ctx, in.TeacherID, in.SubjectID, in.CycleID, in.Group)
	if err == nil {
		return BuildResult{Created: false, Root: existing}, nil
	}
	if !errors.Is(err, ErrNodeNotFound) {
		return BuildResult{}, err
	}

	var (
		root    *model.PortfolioNodeModel
		created int
	)
	err = s.store.WithTx(ctx, func(tx Store) error {
		n, r, err := s.createSpec(ctx, tx, in, s.spec, nil)
		if err != nil {
			return err
		}
		created, root = n, r
		return nil
	})
	if errors.Is(err, ErrRootExists) {
		// Kalah race: ambil root milik pemenang, tanpa baris tambahan.
		winner, ferr := s.store.FindRootNode(ctx, in.TeacherID, in.SubjectID, in.CycleID, in.Group)
		if ferr != nil {
			return BuildResult{}, ferr
		}
		return BuildResult{Created: false, Root: winner}, nil
	}
	if err != nil {
		return BuildResult{}, err
	}
	return BuildResult{Created: true, Root: root, NodeCount: created}, nil
}

// createSpec membuat node untuk satu spec node + seluruh subtree-nya.
// Path = path parent + "/" + key; level = kedalaman spec. Subtree yang
// gagal guard SKS di-skip total.
func (s *TreeBuilderService) createSpec(ctx context.Context, tx Store, in BuildInput, spec SpecNode, parent *model.PortfolioNodeModel) (int, *model.PortfolioNodeModel, error) {
	if !spec.Included(in.Credits) {
		return 0, nil, nil
	}

	node := &model.PortfolioNodeModel{
		PortfolioNodeKey:       spec.Key,
		PortfolioNodeTitle:     spec.Title,
		PortfolioNodePath:      spec.Key,
		PortfolioNodeLevel:     0,
		PortfolioNodeState:     model.NodeStateActive,
		PortfolioNodeTeacherID: in.TeacherID,
		PortfolioNodeSubjectID: in.SubjectID,
		PortfolioNodeCycleID:   in.CycleID,
		PortfolioNodeGroup:     in.Group,
	}
	if parent != nil {
		node.PortfolioNodeParentID = &parent.PortfolioNodeID
		node.PortfolioNodePath = parent.PortfolioNodePath + "/" + spec.Key
		node.PortfolioNodeLevel = parent.PortfolioNodeLevel + 1
	}

	if err := tx.CreateNode(ctx, node); err != nil {
		return 0, nil, err
	}

	total := 1
	for _, child := range spec.Children {
		n, _, err := s.createSpec(ctx, tx, in, child, node)
		if err != nil {
			return 0, nil, err
		}
		total += n
	}
	return total, node, nil
}

// Tree: root + seluruh subtree, untuk ditampilkan.
func (s *TreeBuilderService) Tree(ctx context.Context, rootID uuid.UUID) ([]model.PortfolioNodeModel, error) {
	root, err := s.store.FindNodeByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	return s.store.ListSubtree(ctx, root)
}
