// file: internals/features/portfolio/cycles/controller/module_gate_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "portofolioku_backend/internals/features/portfolio/cycles/dto"
	"portofolioku_backend/internals/features/portfolio/cycles/repository"
	"portofolioku_backend/internals/features/portfolio/cycles/service"
	helper "portofolioku_backend/internals/helpers"
	helperAuth "portofolioku_backend/internals/helpers/auth"
)

type ModuleGateController struct {
	Service   *service.ModuleGateService
	Validator *validator.Validate
}

func NewModuleGateController(db *gorm.DB, v *validator.Validate) *ModuleGateController {
	if v == nil {
		v = validator.New()
	}
	return &ModuleGateController{
		Service:   service.NewModuleGateService(repository.NewGormStore(db)),
		Validator: v,
	}
}

/* ============================================
   TOGGLE (admin)
   PUT /api/admin/cycles/:id/modules/:module
============================================ */

func (ctl *ModuleGateController) SetEnabled(c *fiber.Ctx) error {
	cycleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	module := c.Params("module")

	var p dto.ModuleGateToggleDTO
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

	gate, err := ctl.Service.SetEnabled(c.UserContext(), cycleID, module, p.Enabled, p.Note, actor.UserID)
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonOK(c, "Berhasil mengubah gate modul", dto.FromModuleGateModel(gate))
}

/* ============================================
   SNAPSHOT
   GET /api/cycles/:id/modules
============================================ */

func (ctl *ModuleGateController) Snapshot(c *fiber.Ctx) error {
	cycleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	snap, err := ctl.Service.Snapshot(c.UserContext(), cycleID)
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonOK(c, "Snapshot gate modul", snap)
}
