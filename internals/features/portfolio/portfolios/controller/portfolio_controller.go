// file: internals/features/portfolio/portfolios/controller/portfolio_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portofolioku_backend/internals/constants"
	cycleRepository "portofolioku_backend/internals/features/portfolio/cycles/repository"
	cycleService "portofolioku_backend/internals/features/portfolio/cycles/service"
	fileRepository "portofolioku_backend/internals/features/portfolio/files/repository"
	fileService "portofolioku_backend/internals/features/portfolio/files/service"
	dto "portofolioku_backend/internals/features/portfolio/portfolios/dto"
	"portofolioku_backend/internals/features/portfolio/portfolios/repository"
	"portofolioku_backend/internals/features/portfolio/portfolios/service"
	assignmentModel "portofolioku_backend/internals/features/school/assignments/model"
	subjectModel "portofolioku_backend/internals/features/school/subjects/model"
	helper "portofolioku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type PortfolioController struct {
	DB        *gorm.DB
	Builder   *service.TreeBuilderService
	Gates     *cycleService.ModuleGateService
	Progress  *fileService.ProgressService
	Validator *validator.Validate
}

func NewPortfolioController(db *gorm.DB, v *validator.Validate) *PortfolioController {
	if v == nil {
		v = validator.New()
	}
	return &PortfolioController{
		DB:        db,
		Builder:   service.NewTreeBuilderService(repository.NewGormStore(db)),
		Gates:     cycleService.NewModuleGateService(cycleRepository.NewGormStore(db)),
		Progress:  fileService.NewProgressService(fileRepository.NewGormStore(db)),
		Validator: v,
	}
}

/* ============================================
   GENERATE (admin)
   POST /api/admin/portfolios/generate
============================================ */

func (ctl *PortfolioController) Generate(c *fiber.Ctx) error {
	var p dto.PortfolioGenerateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	var asg assignmentModel.AssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&asg, "assignment_id = ?", p.AssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca assignment")
	}

	var subj subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&subj, "subject_id = ?", asg.AssignmentSubjectID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca mata kuliah")
	}

	// Prasyarat alur: generate hanya setelah document_management enabled.
	enabled, err := ctl.Gates.IsEnabled(c.UserContext(), asg.AssignmentCycleID, constants.ModuleDocumentManagement)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca gate modul")
	}
	if !enabled {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Modul document_management belum enabled untuk siklus ini")
	}

	result, err := ctl.Builder.Build(c.UserContext(), service.BuildInput{
		TeacherID: asg.AssignmentTeacherID,
		SubjectID: asg.AssignmentSubjectID,
		CycleID:   asg.AssignmentCycleID,
		Group:     asg.AssignmentGroup,
		Credits:   subj.SubjectCredits,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate portofolio")
	}

	resp := dto.GenerateResponseDTO{
		Created:   result.Created,
		NodeCount: result.NodeCount,
		Root:      dto.FromNodeModel(result.Root),
	}
	if result.Created {
		return helper.JsonCreated(c, "Berhasil generate pohon portofolio", resp)
	}
	// Idempoten: sudah pernah dibuat, bukan error.
	return helper.JsonOK(c, "Portofolio sudah pernah dibuat untuk assignment ini", resp)
}

/* ============================================
   TREE
   GET /api/portfolios/:id/tree
============================================ */

func (ctl *PortfolioController) Tree(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	nodes, err := ctl.Builder.Tree(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNodeNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pohon portofolio")
	}
	return helper.JsonOK(c, "Pohon portofolio", dto.FromNodeModels(nodes))
}

/* ============================================
   RECOMPUTE (admin)
   POST /api/admin/portfolios/:id/recompute
   :id boleh node mana pun; hasil selalu ditulis ke root pohonnya.
============================================ */

func (ctl *PortfolioController) Recompute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	pct, err := ctl.Progress.Recompute(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, fileService.ErrNodeNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progres")
	}
	return helper.JsonOK(c, "Progres dihitung ulang", fiber.Map{"progress_percentage": pct})
}
