// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/school/assignments/model"
)

type AssignmentCreateDTO struct {
	AssignmentTeacherID uuid.UUID `json:"assignment_teacher_id" validate:"required"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id" validate:"required"`
	AssignmentCycleID   uuid.UUID `json:"assignment_cycle_id"   validate:"required"`
	AssignmentGroup     string    `json:"assignment_group"      validate:"required,min=1,max=20"`
}

func (p *AssignmentCreateDTO) Normalize() {
	p.AssignmentGroup = strings.ToUpper(strings.TrimSpace(p.AssignmentGroup))
}

func (p *AssignmentCreateDTO) ToModel() model.AssignmentModel {
	return model.AssignmentModel{
		AssignmentTeacherID: p.AssignmentTeacherID,
		AssignmentSubjectID: p.AssignmentSubjectID,
		AssignmentCycleID:   p.AssignmentCycleID,
		AssignmentGroup:     p.AssignmentGroup,
	}
}

type AssignmentResponseDTO struct {
	AssignmentID        uuid.UUID `json:"assignment_id"`
	AssignmentTeacherID uuid.UUID `json:"assignment_teacher_id"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id"`
	AssignmentCycleID   uuid.UUID `json:"assignment_cycle_id"`
	AssignmentGroup     string    `json:"assignment_group"`
	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
}

func FromModel(m *model.AssignmentModel) AssignmentResponseDTO {
	return AssignmentResponseDTO{
		AssignmentID:        m.AssignmentID,
		AssignmentTeacherID: m.AssignmentTeacherID,
		AssignmentSubjectID: m.AssignmentSubjectID,
		AssignmentCycleID:   m.AssignmentCycleID,
		AssignmentGroup:     m.AssignmentGroup,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}

func FromModels(ms []model.AssignmentModel) []AssignmentResponseDTO {
	out := make([]AssignmentResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
