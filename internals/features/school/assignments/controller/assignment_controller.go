// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cycleModel "portofolioku_backend/internals/features/portfolio/cycles/model"
	dto "portofolioku_backend/internals/features/school/assignments/dto"
	model "portofolioku_backend/internals/features/school/assignments/model"
	subjectModel "portofolioku_backend/internals/features/school/subjects/model"
	teacherModel "portofolioku_backend/internals/features/school/teachers/model"
	helper "portofolioku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB, v *validator.Validate) *AssignmentController {
	if v == nil {
		v = validator.New()
	}
	return &AssignmentController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin)
   POST /api/admin/assignments
============================================ */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var p dto.AssignmentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// FK check eksplisit biar pesan errornya jelas
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&teacherModel.TeacherModel{}, "teacher_id = ?", p.AssignmentTeacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&subjectModel.SubjectModel{}, "subject_id = ?", p.AssignmentSubjectID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&cycleModel.AcademicCycleModel{}, "academic_cycle_id = ?", p.AssignmentCycleID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siklus tidak ditemukan")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignment untuk kombinasi ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}
	return helper.JsonCreated(c, "Berhasil membuat assignment", dto.FromModel(&ent))
}

/* ============================================
   READ
   GET /api/assignments?cycle_id=&teacher_id=
============================================ */

func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AssignmentModel{})
	if raw := c.Query("cycle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
		}
		q = q.Where("assignment_cycle_id = ?", id)
	}
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("assignment_teacher_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var items []model.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	return helper.JsonList(c, "Daftar assignment", dto.FromModels(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DELETE (admin, soft)
   DELETE /api/admin/assignments/:id
============================================ */

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.AssignmentModel{}, "assignment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonOK(c, "Berhasil menghapus assignment", nil)
}
