// file: internals/features/portfolio/files/dto/file_artifact_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/files/model"
)

// =======================
// Request DTO
// =======================

type FileAttachDTO struct {
	FileArtifactNodeID uuid.UUID `json:"file_artifact_node_id" validate:"required"`
	FileArtifactName   string    `json:"file_artifact_name"    validate:"required,min=1,max=200"`
	FileArtifactURL    *string   `json:"file_artifact_url,omitempty" validate:"omitempty,url"`
}

type FileVerifyDTO struct {
	// deleted lewat endpoint delete, bukan verify
	FileArtifactState string  `json:"file_artifact_state" validate:"required,oneof=pending approved rejected corrected"`
	FileArtifactNote  *string `json:"file_artifact_note,omitempty" validate:"omitempty,max=500"`
}

// =======================
// Response DTO
// =======================

type FileArtifactResponseDTO struct {
	FileArtifactID         uuid.UUID  `json:"file_artifact_id"`
	FileArtifactNodeID     uuid.UUID  `json:"file_artifact_node_id"`
	FileArtifactName       string     `json:"file_artifact_name"`
	FileArtifactURL        *string    `json:"file_artifact_url,omitempty"`
	FileArtifactState      string     `json:"file_artifact_state"`
	FileArtifactUploadedBy uuid.UUID  `json:"file_artifact_uploaded_by"`
	FileArtifactVerifiedBy *uuid.UUID `json:"file_artifact_verified_by,omitempty"`
	FileArtifactVerifiedAt *time.Time `json:"file_artifact_verified_at,omitempty"`
	FileArtifactNote       *string    `json:"file_artifact_note,omitempty"`
	FileArtifactCreatedAt  time.Time  `json:"file_artifact_created_at"`
}

func FromFileModel(m *model.FileArtifactModel) FileArtifactResponseDTO {
	return FileArtifactResponseDTO{
		FileArtifactID:         m.FileArtifactID,
		FileArtifactNodeID:     m.FileArtifactNodeID,
		FileArtifactName:       m.FileArtifactName,
		FileArtifactURL:        m.FileArtifactURL,
		FileArtifactState:      m.FileArtifactState,
		FileArtifactUploadedBy: m.FileArtifactUploadedBy,
		FileArtifactVerifiedBy: m.FileArtifactVerifiedBy,
		FileArtifactVerifiedAt: m.FileArtifactVerifiedAt,
		FileArtifactNote:       m.FileArtifactNote,
		FileArtifactCreatedAt:  m.FileArtifactCreatedAt,
	}
}

func FromFileModels(ms []model.FileArtifactModel) []FileArtifactResponseDTO {
	out := make([]FileArtifactResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromFileModel(&ms[i]))
	}
	return out
}
