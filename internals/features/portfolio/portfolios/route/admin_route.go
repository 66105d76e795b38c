// file: internals/features/portfolio/portfolios/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	portfolioController "portofolioku_backend/internals/features/portfolio/portfolios/controller"
)

func PortfolioAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := portfolioController.NewPortfolioController(db, validator.New())

	portfolios := r.Group("/portfolios")
	portfolios.Post("/generate", ctl.Generate)
	portfolios.Post("/:id/recompute", ctl.Recompute)
}
