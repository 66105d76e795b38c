// file: internals/features/portfolio/files/service/progress_service.go
package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	fileModel "portofolioku_backend/internals/features/portfolio/files/model"
)

/* ============================================
   ProgressService — agregasi persentase bukti
============================================ */

type ProgressService struct {
	store Store
}

func NewProgressService(store Store) *ProgressService {
	return &ProgressService{store: store}
}

// Recompute: hitung ulang persentase approved untuk pohon pemilik node
// (node mana pun di pohon boleh jadi titik masuk) dan tulis hasilnya ke
// ROOT saja — node antara tidak pernah menyimpan persentase sendiri,
// jadi tidak ada staleness per level. Formula tunggal:
// round2(100 * approved / total_non_deleted); pohon tanpa file = 0,
// bukan error. Sinkron dan murah (ukuran pohon terbatas), dipanggil
// inline setelah tiap mutasi file.
func (s *ProgressService) Recompute(ctx context.Context, nodeID uuid.UUID) (float64, error) {
	node, err := s.store.FindNodeByID(ctx, nodeID)
	if err != nil {
		return 0, err
	}
	root, err := s.store.FindRootNodeFor(ctx, node)
	if err != nil {
		return 0, err
	}

	ids, err := s.store.ListSubtreeNodeIDs(ctx, root)
	if err != nil {
		return 0, err
	}

	files, err := s.store.ListFilesByNodeIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	pct := ComputePercentage(files)
	if err := s.store.UpdateNodeProgress(ctx, root.PortfolioNodeID, pct); err != nil {
		return 0, err
	}
	return pct, nil
}

// ComputePercentage: fungsi murni dari daftar file non-deleted.
func ComputePercentage(files []fileModel.FileArtifactModel) float64 {
	total := 0
	approved := 0
	for i := range files {
		if files[i].FileArtifactState == fileModel.FileStateDeleted {
			continue
		}
		total++
		if files[i].FileArtifactState == fileModel.FileStateApproved {
			approved++
		}
	}
	if total == 0 {
		return 0
	}
	return Round2(100 * float64(approved) / float64(total))
}

// Round2: pembulatan 2 desimal.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
