// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "portofolioku_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db, validator.New())

	teachers := r.Group("/teachers")
	teachers.Post("/", ctl.Create)
	teachers.Delete("/:id", ctl.Delete)
}

func TeacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db, nil)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
}
