// file: internals/features/portfolio/cycles/controller/cycle_controller.go
package controller

import (
	"errors"

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

/* ============================================
   Controller
============================================ */

type CycleController struct {
	Service   *service.CycleStateService
	Validator *validator.Validate
}

func NewCycleController(db *gorm.DB, v *validator.Validate) *CycleController {
	if v == nil {
		v = validator.New()
	}
	return &CycleController{
		Service:   service.NewCycleStateService(repository.NewGormStore(db)),
		Validator: v,
	}
}

// statusForServiceErr memetakan error bertipe dari core ke status HTTP.
// Konflik konkurensi sengaja dibedakan dari invariant violation supaya
// caller bisa retry.
func statusForServiceErr(err error) int {
	switch {
	case errors.Is(err, service.ErrCycleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrConcurrentActivation),
		errors.Is(err, service.ErrConcurrentVerification):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidDateRange):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrCycleNotActive),
		errors.Is(err, service.ErrSequenceViolation),
		errors.Is(err, service.ErrUnknownModule):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func serviceErr(c *fiber.Ctx, err error) error {
	code := statusForServiceErr(err)
	if code == fiber.StatusInternalServerError {
		return helper.JsonError(c, code, "Terjadi kesalahan internal")
	}
	return helper.JsonError(c, code, err.Error())
}

/* ============================================
   CREATE (admin)
   POST /api/admin/cycles
============================================ */

func (ctl *CycleController) Create(c *fiber.Ctx) error {
	var p dto.CycleCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	cycle, err := ctl.Service.Create(c.UserContext(), p.ToInput(actor.UserID))
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat siklus akademik", dto.FromCycleModel(cycle))
}

/* ============================================
   TRANSITION (admin)
   POST /api/admin/cycles/:id/transition
============================================ */

func (ctl *CycleController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.CycleTransitionDTO
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

	cycle, err := ctl.Service.Transition(c.UserContext(), id, p.TargetState, actor.UserID)
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonOK(c, "Berhasil mengubah state siklus", dto.FromCycleModel(cycle))
}

/* ============================================
   DELETE (admin) — hanya preparation
   DELETE /api/admin/cycles/:id
============================================ */

func (ctl *CycleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonOK(c, "Berhasil menghapus siklus", nil)
}

/* ============================================
   READ
   GET /api/cycles
   GET /api/cycles/:id
============================================ */

func (ctl *CycleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	cycles, total, err := ctl.Service.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonList(c, "Daftar siklus akademik",
		dto.FromCycleModels(cycles),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *CycleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	cycle, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceErr(c, err)
	}
	return helper.JsonOK(c, "Detail siklus akademik", dto.FromCycleModel(cycle))
}
