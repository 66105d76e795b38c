// file: internals/seeds/school/dev_seed.go
package school

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	cycleModel "portofolioku_backend/internals/features/portfolio/cycles/model"
	assignmentModel "portofolioku_backend/internals/features/school/assignments/model"
	subjectModel "portofolioku_backend/internals/features/school/subjects/model"
	teacherModel "portofolioku_backend/internals/features/school/teachers/model"
)

// SeedDevData: data minimum untuk lokal — satu siklus, dua dosen, dua
// mata kuliah (3 SKS dan 5 SKS, supaya dua bentuk pohon portofolio bisa
// dicoba) + assignment untuk tiap dosen. Idempoten: skip kalau kode /
// nama sudah ada.
func SeedDevData(db *gorm.DB) {
	cycle := cycleModel.AcademicCycleModel{
		AcademicCycleName:          "2026-I",
		AcademicCycleState:         cycleModel.CycleStatePreparation,
		AcademicCycleStartDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		AcademicCycleEndDate:       time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		AcademicCycleYear:          2026,
		AcademicCycleSemesterLabel: "2026-I",
		AcademicCycleCreatedBy:     uuid.New(),
	}
	var cnt int64
	db.Model(&cycleModel.AcademicCycleModel{}).
		Where("academic_cycle_name = ?", cycle.AcademicCycleName).Count(&cnt)
	if cnt == 0 {
		if err := db.Create(&cycle).Error; err != nil {
			log.Printf("seed cycle %s err: %v", cycle.AcademicCycleName, err)
		}
	} else {
		db.First(&cycle, "academic_cycle_name = ?", cycle.AcademicCycleName)
	}

	teachers := []teacherModel.TeacherModel{
		{TeacherCode: "DSN-001", TeacherFullName: "Rina Kusuma"},
		{TeacherCode: "DSN-002", TeacherFullName: "Bagus Prasetyo"},
	}
	for i := range teachers {
		db.Model(&teacherModel.TeacherModel{}).
			Where("teacher_code = ?", teachers[i].TeacherCode).Count(&cnt)
		if cnt > 0 {
			db.First(&teachers[i], "teacher_code = ?", teachers[i].TeacherCode)
			continue
		}
		if err := db.Create(&teachers[i]).Error; err != nil {
			log.Printf("seed teacher %s err: %v", teachers[i].TeacherCode, err)
		}
	}

	subjects := []subjectModel.SubjectModel{
		{SubjectCode: "IF-101", SubjectName: "Algoritma dan Pemrograman", SubjectCredits: 3, SubjectGroupLabels: pq.StringArray{"A", "B"}},
		{SubjectCode: "IF-205", SubjectName: "Basis Data Lanjut", SubjectCredits: 5, SubjectGroupLabels: pq.StringArray{"A"}},
	}
	for i := range subjects {
		db.Model(&subjectModel.SubjectModel{}).
			Where("subject_code = ?", subjects[i].SubjectCode).Count(&cnt)
		if cnt > 0 {
			db.First(&subjects[i], "subject_code = ?", subjects[i].SubjectCode)
			continue
		}
		if err := db.Create(&subjects[i]).Error; err != nil {
			log.Printf("seed subject %s err: %v", subjects[i].SubjectCode, err)
		}
	}

	// Satu assignment per dosen di siklus yang sama.
	for i := range teachers {
		asg := assignmentModel.AssignmentModel{
			AssignmentTeacherID: teachers[i].TeacherID,
			AssignmentSubjectID: subjects[i%len(subjects)].SubjectID,
			AssignmentCycleID:   cycle.AcademicCycleID,
			AssignmentGroup:     "A",
		}
		db.Model(&assignmentModel.AssignmentModel{}).
			Where("assignment_teacher_id = ? AND assignment_subject_id = ? AND assignment_cycle_id = ? AND assignment_group = ?",
				asg.AssignmentTeacherID, asg.AssignmentSubjectID, asg.AssignmentCycleID, asg.AssignmentGroup).
			Count(&cnt)
		if cnt > 0 {
			continue
		}
		if err := db.Create(&asg).Error; err != nil {
			log.Printf("seed assignment %s err: %v", teachers[i].TeacherCode, err)
		}
	}

	log.Printf("✅ seed selesai %s", time.Now().Format(time.RFC3339))
}
