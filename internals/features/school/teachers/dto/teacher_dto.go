// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"portofolioku_backend/internals/features/school/teachers/model"
)

type TeacherCreateDTO struct {
	TeacherCode     string  `json:"teacher_code"      validate:"required,min=3,max=30"`
	TeacherFullName string  `json:"teacher_full_name" validate:"required,min=3,max=120"`
	TeacherEmail    *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
}

func (p *TeacherCreateDTO) Normalize() {
	p.TeacherCode = strings.TrimSpace(p.TeacherCode)
	p.TeacherFullName = strings.TrimSpace(p.TeacherFullName)
}

func (p *TeacherCreateDTO) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherCode:     p.TeacherCode,
		TeacherFullName: p.TeacherFullName,
		TeacherEmail:    p.TeacherEmail,
	}
}

type TeacherResponseDTO struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherCode      string    `json:"teacher_code"`
	TeacherFullName  string    `json:"teacher_full_name"`
	TeacherEmail     *string   `json:"teacher_email,omitempty"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func FromModel(m *model.TeacherModel) TeacherResponseDTO {
	return TeacherResponseDTO{
		TeacherID:        m.TeacherID,
		TeacherCode:      m.TeacherCode,
		TeacherFullName:  m.TeacherFullName,
		TeacherEmail:     m.TeacherEmail,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}

func FromModels(ms []model.TeacherModel) []TeacherResponseDTO {
	out := make([]TeacherResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
