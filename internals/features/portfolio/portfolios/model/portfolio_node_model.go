// file: internals/features/portfolio/portfolios/model/portfolio_node_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// State node portofolio.
const (
	NodeStateActive   = "active"
	NodeStateLocked   = "locked"
	NodeStateArchived = "archived"
)

// PortfolioNodeModel: satu folder dalam pohon bukti mengajar. Root =
// level 0, dibuat sekali per (teacher, subject, cycle, group). Builder
// hanya pernah append, jadi graph parent bebas cycle by construction.
type PortfolioNodeModel struct {
	PortfolioNodeID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:portfolio_node_id" json:"portfolio_node_id"`
	PortfolioNodeParentID *uuid.UUID `gorm:"type:uuid;index;column:portfolio_node_parent_id" json:"portfolio_node_parent_id,omitempty"`

	PortfolioNodeKey   string `gorm:"type:varchar(50);not null;column:portfolio_node_key" json:"portfolio_node_key"`
	PortfolioNodeTitle string `gorm:"type:varchar(120);not null;column:portfolio_node_title" json:"portfolio_node_title"`

	// Locator slash-delimited, mis. "portfolio/teaching_materials/unit_3".
	PortfolioNodePath  string `gorm:"type:text;not null;index;column:portfolio_node_path" json:"portfolio_node_path"`
	PortfolioNodeLevel int    `gorm:"type:integer;not null;column:portfolio_node_level" json:"portfolio_node_level"`

	PortfolioNodeState string `gorm:"type:varchar(20);not null;default:'active';column:portfolio_node_state" json:"portfolio_node_state"`

	// Persentase hasil agregasi; tidak pernah di-edit manual.
	PortfolioNodeProgressPercentage float64 `gorm:"type:numeric(5,2);not null;default:0;column:portfolio_node_progress_percentage" json:"portfolio_node_progress_percentage"`

	// Denormalisasi assignment untuk query. Unique index hanya pada root
	// (level 0) via partial index di migration; uniqueIndex di sini
	// mencakup level supaya duplikasi root tetap tertangkap.
	PortfolioNodeTeacherID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_portfolio_root,where:portfolio_node_level = 0;column:portfolio_node_teacher_id" json:"portfolio_node_teacher_id"`
	PortfolioNodeSubjectID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_portfolio_root,where:portfolio_node_level = 0;column:portfolio_node_subject_id" json:"portfolio_node_subject_id"`
	PortfolioNodeCycleID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_portfolio_root,where:portfolio_node_level = 0;column:portfolio_node_cycle_id" json:"portfolio_node_cycle_id"`
	PortfolioNodeGroup     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_portfolio_root,where:portfolio_node_level = 0;column:portfolio_node_group" json:"portfolio_node_group"`

	PortfolioNodeCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:portfolio_node_created_at" json:"portfolio_node_created_at"`
	PortfolioNodeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:portfolio_node_updated_at" json:"portfolio_node_updated_at"`
	PortfolioNodeDeletedAt gorm.DeletedAt `gorm:"column:portfolio_node_deleted_at;index" json:"portfolio_node_deleted_at,omitempty"`
}

func (PortfolioNodeModel) TableName() string { return "portfolio_nodes" }

func (m *PortfolioNodeModel) IsRoot() bool { return m.PortfolioNodeLevel == 0 }
