// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "portofolioku_backend/internals/features/school/subjects/dto"
	model "portofolioku_backend/internals/features/school/subjects/model"
	helper "portofolioku_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = validator.New()
	}
	return &SubjectController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin)
   POST /api/admin/subjects
============================================ */

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var p dto.SubjectCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mata kuliah sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mata kuliah")
	}
	return helper.JsonCreated(c, "Berhasil membuat mata kuliah", dto.FromModel(&ent))
}

/* ============================================
   UPDATE (admin)
   PATCH /api/admin/subjects/:id
============================================ */

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.SubjectUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonOK(c, "Berhasil memperbarui mata kuliah", dto.FromModel(&ent))
}

/* ============================================
   READ
   GET /api/subjects
   GET /api/subjects/:id
============================================ */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var items []model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("subject_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	return helper.JsonList(c, "Daftar mata kuliah", dto.FromModels(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var ent model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	return helper.JsonOK(c, "Detail mata kuliah", dto.FromModel(&ent))
}

/* ============================================
   DELETE (admin, soft)
   DELETE /api/admin/subjects/:id
============================================ */

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.SubjectModel{}, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonOK(c, "Berhasil menghapus mata kuliah", nil)
}
