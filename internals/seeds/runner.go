package seeds

import (
	"gorm.io/gorm"

	school "portofolioku_backend/internals/seeds/school"
)

func RunAllSeeds(db *gorm.DB) {
	school.SeedDevData(db)
}
