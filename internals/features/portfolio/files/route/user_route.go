// file: internals/features/portfolio/files/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileController "portofolioku_backend/internals/features/portfolio/files/controller"
)

// FileUserRoutes: dosen menempelkan & melihat file buktinya sendiri.
func FileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fileController.NewFileArtifactController(db, validator.New())

	files := r.Group("/files")
	files.Post("/", ctl.Attach)
	files.Get("/", ctl.ListByNode)
	files.Delete("/:id", ctl.Delete)
}
