// file: internals/features/portfolio/files/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileController "portofolioku_backend/internals/features/portfolio/files/controller"
)

// FileAdminRoutes: verifikasi file oleh admin/verifikator.
func FileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fileController.NewFileArtifactController(db, validator.New())

	files := r.Group("/files")
	files.Put("/:id/verification", ctl.SetVerification)
}
