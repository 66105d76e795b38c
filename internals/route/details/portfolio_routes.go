// file: internals/route/details/portfolio_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CycleRoute "portofolioku_backend/internals/features/portfolio/cycles/route"
	FileRoute "portofolioku_backend/internals/features/portfolio/files/route"
	PortfolioRoute "portofolioku_backend/internals/features/portfolio/portfolios/route"
)

func PortfolioUserRoutes(r fiber.Router, db *gorm.DB) {
	CycleRoute.CycleUserRoutes(r, db)
	PortfolioRoute.PortfolioUserRoutes(r, db)
	FileRoute.FileUserRoutes(r, db)
}

func PortfolioAdminRoutes(r fiber.Router, db *gorm.DB) {
	CycleRoute.CycleAdminRoutes(r, db)
	PortfolioRoute.PortfolioAdminRoutes(r, db)
	FileRoute.FileAdminRoutes(r, db)
}
