// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "portofolioku_backend/internals/features/school/teachers/dto"
	model "portofolioku_backend/internals/features/school/teachers/model"
	helper "portofolioku_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin)
   POST /api/admin/teachers
============================================ */

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var p dto.TeacherCreateDTO
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
			return helper.JsonError(c, fiber.StatusConflict, "Kode dosen sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data dosen")
	}
	return helper.JsonCreated(c, "Berhasil membuat data dosen", dto.FromModel(&ent))
}

/* ============================================
   READ
   GET /api/teachers
   GET /api/teachers/:id
============================================ */

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var items []model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("teacher_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	return helper.JsonList(c, "Daftar dosen", dto.FromModels(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var ent model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data")
	}
	return helper.JsonOK(c, "Detail dosen", dto.FromModel(&ent))
}

/* ============================================
   DELETE (admin, soft)
   DELETE /api/admin/teachers/:id
============================================ */

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.TeacherModel{}, "teacher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonOK(c, "Berhasil menghapus dosen", nil)
}
