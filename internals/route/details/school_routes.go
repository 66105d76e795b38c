// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AssignmentRoute "portofolioku_backend/internals/features/school/assignments/route"
	SubjectRoute "portofolioku_backend/internals/features/school/subjects/route"
	TeacherRoute "portofolioku_backend/internals/features/school/teachers/route"
)

func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	SubjectRoute.SubjectUserRoutes(r, db)
	TeacherRoute.TeacherUserRoutes(r, db)
	AssignmentRoute.AssignmentUserRoutes(r, db)
}

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	SubjectRoute.SubjectAdminRoutes(r, db)
	TeacherRoute.TeacherAdminRoutes(r, db)
	AssignmentRoute.AssignmentAdminRoutes(r, db)
}
