// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"portofolioku_backend/internals/features/school/subjects/model"
)

type SubjectCreateDTO struct {
	SubjectCode        string   `json:"subject_code"    validate:"required,min=3,max=20"`
	SubjectName        string   `json:"subject_name"    validate:"required,min=3,max=120"`
	SubjectCredits     int      `json:"subject_credits" validate:"required,min=1,max=10"`
	SubjectGroupLabels []string `json:"subject_group_labels,omitempty" validate:"omitempty,dive,min=1,max=20"`
}

func (p *SubjectCreateDTO) Normalize() {
	p.SubjectCode = strings.ToUpper(strings.TrimSpace(p.SubjectCode))
	p.SubjectName = strings.TrimSpace(p.SubjectName)
}

func (p *SubjectCreateDTO) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCode:        p.SubjectCode,
		SubjectName:        p.SubjectName,
		SubjectCredits:     p.SubjectCredits,
		SubjectGroupLabels: pq.StringArray(p.SubjectGroupLabels),
	}
}

type SubjectUpdateDTO struct {
	SubjectName        *string  `json:"subject_name,omitempty"    validate:"omitempty,min=3,max=120"`
	SubjectCredits     *int     `json:"subject_credits,omitempty" validate:"omitempty,min=1,max=10"`
	SubjectGroupLabels []string `json:"subject_group_labels,omitempty" validate:"omitempty,dive,min=1,max=20"`
}

func (u *SubjectUpdateDTO) ApplyUpdates(ent *model.SubjectModel) {
	if u.SubjectName != nil {
		ent.SubjectName = strings.TrimSpace(*u.SubjectName)
	}
	if u.SubjectCredits != nil {
		ent.SubjectCredits = *u.SubjectCredits
	}
	if u.SubjectGroupLabels != nil {
		ent.SubjectGroupLabels = pq.StringArray(u.SubjectGroupLabels)
	}
}

type SubjectResponseDTO struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectCode        string    `json:"subject_code"`
	SubjectName        string    `json:"subject_name"`
	SubjectCredits     int       `json:"subject_credits"`
	SubjectGroupLabels []string  `json:"subject_group_labels,omitempty"`
	SubjectCreatedAt   time.Time `json:"subject_created_at"`
	SubjectUpdatedAt   time.Time `json:"subject_updated_at"`
}

func FromModel(m *model.SubjectModel) SubjectResponseDTO {
	return SubjectResponseDTO{
		SubjectID:          m.SubjectID,
		SubjectCode:        m.SubjectCode,
		SubjectName:        m.SubjectName,
		SubjectCredits:     m.SubjectCredits,
		SubjectGroupLabels: []string(m.SubjectGroupLabels),
		SubjectCreatedAt:   m.SubjectCreatedAt,
		SubjectUpdatedAt:   m.SubjectUpdatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponseDTO {
	out := make([]SubjectResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
