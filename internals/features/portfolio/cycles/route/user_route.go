// file: internals/features/portfolio/cycles/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleController "portofolioku_backend/internals/features/portfolio/cycles/controller"
)

// CycleUserRoutes: read-only untuk semua user login.
func CycleUserRoutes(r fiber.Router, db *gorm.DB) {
	cycleCtl := cycleController.NewCycleController(db, nil)
	gateCtl := cycleController.NewModuleGateController(db, nil)

	cycles := r.Group("/cycles")
	cycles.Get("/", cycleCtl.List)
	cycles.Get("/:id", cycleCtl.GetByID)
	cycles.Get("/:id/modules", gateCtl.Snapshot)
}
