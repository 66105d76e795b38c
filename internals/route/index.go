// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portofolioku_backend/internals/constants"
	authMiddleware "portofolioku_backend/internals/middlewares/auth"
	routeDetails "portofolioku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PRIVATE (semua user login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api", authMiddleware.AuthMiddleware())
	routeDetails.PortfolioUserRoutes(user, db)
	routeDetails.SchoolUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen portofolio"), constants.AdminOnly...),
	)
	routeDetails.PortfolioAdminRoutes(admin, db)
	routeDetails.SchoolAdminRoutes(admin, db)
}
