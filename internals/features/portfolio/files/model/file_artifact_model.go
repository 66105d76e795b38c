// file: internals/features/portfolio/files/model/file_artifact_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// State verifikasi file bukti. "deleted" adalah soft delete sebagai
// state (bukan boolean), karena ada beberapa state terminal non-deleted.
const (
	FileStatePending   = "pending"
	FileStateApproved  = "approved"
	FileStateRejected  = "rejected"
	FileStateCorrected = "corrected"
	FileStateDeleted   = "deleted"
)

var FileStates = []string{
	FileStatePending,
	FileStateApproved,
	FileStateRejected,
	FileStateCorrected,
	FileStateDeleted,
}

func IsFileState(state string) bool {
	for _, s := range FileStates {
		if s == state {
			return true
		}
	}
	return false
}

// FileArtifactModel: satu file bukti, menempel ke tepat satu node
// portofolio. Setelah terverifikasi tidak pernah dihapus fisik.
type FileArtifactModel struct {
	FileArtifactID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:file_artifact_id" json:"file_artifact_id"`
	FileArtifactNodeID uuid.UUID `gorm:"type:uuid;not null;index;column:file_artifact_node_id" json:"file_artifact_node_id"`

	FileArtifactName string  `gorm:"type:varchar(200);not null;column:file_artifact_name" json:"file_artifact_name"`
	FileArtifactURL  *string `gorm:"type:text;column:file_artifact_url" json:"file_artifact_url,omitempty"`

	FileArtifactState string `gorm:"type:varchar(20);not null;default:'pending';index;column:file_artifact_state" json:"file_artifact_state"`

	FileArtifactUploadedBy uuid.UUID  `gorm:"type:uuid;not null;column:file_artifact_uploaded_by" json:"file_artifact_uploaded_by"`
	FileArtifactVerifiedBy *uuid.UUID `gorm:"type:uuid;column:file_artifact_verified_by" json:"file_artifact_verified_by,omitempty"`
	FileArtifactVerifiedAt *time.Time `gorm:"type:timestamptz;column:file_artifact_verified_at" json:"file_artifact_verified_at,omitempty"`
	FileArtifactNote       *string    `gorm:"type:text;column:file_artifact_note" json:"file_artifact_note,omitempty"`

	FileArtifactCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:file_artifact_created_at" json:"file_artifact_created_at"`
	FileArtifactUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:file_artifact_updated_at" json:"file_artifact_updated_at"`
}

func (FileArtifactModel) TableName() string { return "file_artifacts" }

func (m *FileArtifactModel) BeforeSave(tx *gorm.DB) error {
	m.FileArtifactName = strings.TrimSpace(m.FileArtifactName)
	return nil
}
