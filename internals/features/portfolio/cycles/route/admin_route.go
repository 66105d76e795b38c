// file: internals/features/portfolio/cycles/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleController "portofolioku_backend/internals/features/portfolio/cycles/controller"
)

// CycleAdminRoutes: operasi mutasi lifecycle (group sudah dibungkus auth +
// role admin di router induk).
func CycleAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	cycleCtl := cycleController.NewCycleController(db, v)
	gateCtl := cycleController.NewModuleGateController(db, v)

	cycles := r.Group("/cycles")
	cycles.Post("/", cycleCtl.Create)
	cycles.Post("/:id/transition", cycleCtl.Transition)
	cycles.Delete("/:id", cycleCtl.Delete)
	cycles.Put("/:id/modules/:module", gateCtl.SetEnabled)
}
