// file: internals/features/portfolio/files/service/file_artifact_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	fileModel "portofolioku_backend/internals/features/portfolio/files/model"
)

/* ============================================
   FileArtifactService — metadata file bukti
============================================ */

// Upload fisik file ada di luar core; service ini hanya mengelola baris
// metadata + state verifikasinya, dan memicu recompute progres root
// setelah tiap mutasi.

type FileArtifactService struct {
	store    Store
	progress *ProgressService
}

func NewFileArtifactService(store Store) *FileArtifactService {
	return &FileArtifactService{store: store, progress: NewProgressService(store)}
}

type AttachInput struct {
	NodeID     uuid.UUID
	Name       string
	URL        *string
	UploadedBy uuid.UUID
}

// Attach: tempelkan file bukti baru (state pending) ke satu node.
func (s *FileArtifactService) Attach(ctx context.Context, in AttachInput) (*fileModel.FileArtifactModel, error) {
	if _, err := s.store.FindNodeByID(ctx, in.NodeID); err != nil {
		return nil, err
	}
	f := &fileModel.FileArtifactModel{
		FileArtifactNodeID:     in.NodeID,
		FileArtifactName:       in.Name,
		FileArtifactURL:        in.URL,
		FileArtifactState:      fileModel.FileStatePending,
		FileArtifactUploadedBy: in.UploadedBy,
	}
	if err := s.store.CreateFile(ctx, f); err != nil {
		return nil, err
	}
	if _, err := s.progress.Recompute(ctx, in.NodeID); err != nil {
		return nil, err
	}
	return f, nil
}

// SetVerification: ubah state verifikasi (pending/approved/rejected/
// corrected) + stamp verifikator.
func (s *FileArtifactService) SetVerification(ctx context.Context, fileID uuid.UUID, state string, note *string, actor uuid.UUID) (*fileModel.FileArtifactModel, error) {
	if !fileModel.IsFileState(state) || state == fileModel.FileStateDeleted {
		return nil, ErrInvalidFileState
	}
	f, err := s.store.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	f.FileArtifactState = state
	f.FileArtifactNote = note
	f.FileArtifactVerifiedBy = &actor
	f.FileArtifactVerifiedAt = &now
	if err := s.store.SaveFile(ctx, f); err != nil {
		return nil, err
	}
	if _, err := s.progress.Recompute(ctx, f.FileArtifactNodeID); err != nil {
		return nil, err
	}
	return f, nil
}

// SoftDelete: tandai deleted (keluar dari denominator progres), baris
// tetap ada untuk audit.
func (s *FileArtifactService) SoftDelete(ctx context.Context, fileID uuid.UUID, actor uuid.UUID) error {
	f, err := s.store.FindFileByID(ctx, fileID)
	if err != nil {
		return err
	}
	now := time.Now()
	f.FileArtifactState = fileModel.FileStateDeleted
	f.FileArtifactVerifiedBy = &actor
	f.FileArtifactVerifiedAt = &now
	if err := s.store.SaveFile(ctx, f); err != nil {
		return err
	}
	_, err = s.progress.Recompute(ctx, f.FileArtifactNodeID)
	return err
}

func (s *FileArtifactService) ListByNode(ctx context.Context, nodeID uuid.UUID) ([]fileModel.FileArtifactModel, error) {
	if _, err := s.store.FindNodeByID(ctx, nodeID); err != nil {
		return nil, err
	}
	return s.store.ListFilesByNode(ctx, nodeID)
}
