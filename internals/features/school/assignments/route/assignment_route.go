// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "portofolioku_backend/internals/features/school/assignments/controller"
)

func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db, validator.New())

	assignments := r.Group("/assignments")
	assignments.Post("/", ctl.Create)
	assignments.Delete("/:id", ctl.Delete)
}

func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db, nil)

	assignments := r.Group("/assignments")
	assignments.Get("/", ctl.List)
}
