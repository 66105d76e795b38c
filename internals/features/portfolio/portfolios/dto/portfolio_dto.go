// file: internals/features/portfolio/portfolios/dto/portfolio_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/portfolio/portfolios/model"
)

// =======================
// Request DTO
// =======================

type PortfolioGenerateDTO struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type PortfolioNodeResponseDTO struct {
	PortfolioNodeID                 uuid.UUID  `json:"portfolio_node_id"`
	PortfolioNodeParentID           *uuid.UUID `json:"portfolio_node_parent_id,omitempty"`
	PortfolioNodeKey                string     `json:"portfolio_node_key"`
	PortfolioNodeTitle              string     `json:"portfolio_node_title"`
	PortfolioNodePath               string     `json:"portfolio_node_path"`
	PortfolioNodeLevel              int        `json:"portfolio_node_level"`
	PortfolioNodeState              string     `json:"portfolio_node_state"`
	PortfolioNodeProgressPercentage float64    `json:"portfolio_node_progress_percentage"`
	PortfolioNodeTeacherID          uuid.UUID  `json:"portfolio_node_teacher_id"`
	PortfolioNodeSubjectID          uuid.UUID  `json:"portfolio_node_subject_id"`
	PortfolioNodeCycleID            uuid.UUID  `json:"portfolio_node_cycle_id"`
	PortfolioNodeGroup              string     `json:"portfolio_node_group"`
	PortfolioNodeCreatedAt          time.Time  `json:"portfolio_node_created_at"`
}

func FromNodeModel(m *model.PortfolioNodeModel) PortfolioNodeResponseDTO {
	return PortfolioNodeResponseDTO{
		PortfolioNodeID:                 m.PortfolioNodeID,
		PortfolioNodeParentID:           m.PortfolioNodeParentID,
		PortfolioNodeKey:                m.PortfolioNodeKey,
		PortfolioNodeTitle:              m.PortfolioNodeTitle,
		PortfolioNodePath:               m.PortfolioNodePath,
		PortfolioNodeLevel:              m.PortfolioNodeLevel,
		PortfolioNodeState:              m.PortfolioNodeState,
		PortfolioNodeProgressPercentage: m.PortfolioNodeProgressPercentage,
		PortfolioNodeTeacherID:          m.PortfolioNodeTeacherID,
		PortfolioNodeSubjectID:          m.PortfolioNodeSubjectID,
		PortfolioNodeCycleID:            m.PortfolioNodeCycleID,
		PortfolioNodeGroup:              m.PortfolioNodeGroup,
		PortfolioNodeCreatedAt:          m.PortfolioNodeCreatedAt,
	}
}

func FromNodeModels(ms []model.PortfolioNodeModel) []PortfolioNodeResponseDTO {
	out := make([]PortfolioNodeResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromNodeModel(&ms[i]))
	}
	return out
}

type GenerateResponseDTO struct {
	Created   bool                     `json:"created"`
	NodeCount int                      `json:"node_count"`
	Root      PortfolioNodeResponseDTO `json:"root"`
}
