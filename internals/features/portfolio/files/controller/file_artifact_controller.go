// file: internals/features/portfolio/files/controller/file_artifact_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "portofolioku_backend/internals/features/portfolio/files/dto"
	"portofolioku_backend/internals/features/portfolio/files/repository"
	"portofolioku_backend/internals/features/portfolio/files/service"
	helper "portofolioku_backend/internals/helpers"
	helperAuth "portofolioku_backend/internals/helpers/auth"
)

type FileArtifactController struct {
	Service   *service.FileArtifactService
	Validator *validator.Validate
}

func NewFileArtifactController(db *gorm.DB, v *validator.Validate) *FileArtifactController {
	if v == nil {
		v = validator.New()
	}
	return &FileArtifactController{
		Service:   service.NewFileArtifactService(repository.NewGormStore(db)),
		Validator: v,
	}
}

func fileErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrFileNotFound), errors.Is(err, service.ErrNodeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidFileState):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

/* ============================================
   ATTACH (teacher & admin)
   POST /api/files
============================================ */

func (ctl *FileArtifactController) Attach(c *fiber.Ctx) error {
	var p dto.FileAttachDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	f, err := ctl.Service.Attach(c.UserContext(), service.AttachInput{
		NodeID:     p.FileArtifactNodeID,
		Name:       p.FileArtifactName,
		URL:        p.FileArtifactURL,
		UploadedBy: actor.UserID,
	})
	if err != nil {
		return fileErr(c, err)
	}
	return helper.JsonCreated(c, "Berhasil menambahkan file bukti", dto.FromFileModel(f))
}

/* ============================================
   VERIFY (admin)
   PUT /api/admin/files/:id/verification
============================================ */

func (ctl *FileArtifactController) SetVerification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.FileVerifyDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	f, err := ctl.Service.SetVerification(c.UserContext(), id, p.FileArtifactState, p.FileArtifactNote, actor.UserID)
	if err != nil {
		return fileErr(c, err)
	}
	return helper.JsonOK(c, "Berhasil mengubah state verifikasi", dto.FromFileModel(f))
}

/* ============================================
   SOFT DELETE
   DELETE /api/files/:id
============================================ */

func (ctl *FileArtifactController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	if err := ctl.Service.SoftDelete(c.UserContext(), id, actor.UserID); err != nil {
		return fileErr(c, err)
	}
	return helper.JsonOK(c, "File bukti dihapus", nil)
}

/* ============================================
   LIST PER NODE
   GET /api/files?node_id=...
============================================ */

func (ctl *FileArtifactController) ListByNode(c *fiber.Ctx) error {
	nodeID, err := uuid.Parse(c.Query("node_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "node_id tidak valid")
	}
	files, err := ctl.Service.ListByNode(c.UserContext(), nodeID)
	if err != nil {
		return fileErr(c, err)
	}
	return helper.JsonOK(c, "Daftar file bukti", dto.FromFileModels(files))
}
