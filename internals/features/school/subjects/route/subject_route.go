// file: internals/features/school/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "portofolioku_backend/internals/features/school/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db, validator.New())

	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.Create)
	subjects.Patch("/:id", ctl.Patch)
	subjects.Delete("/:id", ctl.Delete)
}

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db, nil)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.List)
	subjects.Get("/:id", ctl.GetByID)
}
