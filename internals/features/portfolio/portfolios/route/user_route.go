// file: internals/features/portfolio/portfolios/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	portfolioController "portofolioku_backend/internals/features/portfolio/portfolios/controller"
)

func PortfolioUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := portfolioController.NewPortfolioController(db, nil)

	portfolios := r.Group("/portfolios")
	portfolios.Get("/:id/tree", ctl.Tree)
}
