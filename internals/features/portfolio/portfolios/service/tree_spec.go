// file: internals/features/portfolio/portfolios/service/tree_spec.go
package service

import "portofolioku_backend/internals/constants"

// SpecNode: deklarasi satu node pada bentuk pohon portofolio. Pohon
// dideklarasikan sekali sebagai data; builder generik yang jalan DFS.
// MinCredits > 0 berarti node (beserta subtree-nya) hanya dibuat kalau
// SKS mata kuliah >= MinCredits; node yang tidak lolos guard di-skip
// total, tanpa placeholder.
type SpecNode struct {
	Key        string
	Title      string
	MinCredits int
	Children   []SpecNode
}

// PortfolioTreeSpec v1: root (sampul portofolio) + 8 seksi. Tiga seksi
// punya subseksi kondisional (unit/parsial ke-3) yang hanya muncul untuk
// mata kuliah >= 4 SKS. Bentuk ini statis dan deterministik: path/level
// murni fungsi dari spec + guard SKS, tanpa waktu atau random.
var PortfolioTreeSpec = SpecNode{
	Key:   "portfolio",
	Title: "Portofolio Mengajar",
	Children: []SpecNode{
		{Key: "general_info", Title: "Informasi Umum", Children: []SpecNode{
			{Key: "cover_sheet", Title: "Lembar Sampul"},
			{Key: "teaching_schedule", Title: "Jadwal Mengajar"},
		}},
		{Key: "syllabus", Title: "Silabus", Children: []SpecNode{
			{Key: "course_syllabus", Title: "Silabus Mata Kuliah"},
			{Key: "lesson_plan", Title: "Rencana Pembelajaran"},
		}},
		{Key: "teaching_materials", Title: "Materi Ajar", Children: []SpecNode{
			{Key: "unit_1", Title: "Materi Unit 1"},
			{Key: "unit_2", Title: "Materi Unit 2"},
			{Key: "unit_3", Title: "Materi Unit 3", MinCredits: constants.MinCreditsForFullShape},
		}},
		{Key: "attendance_records", Title: "Rekap Kehadiran"},
		{Key: "exam_statements_p3", Title: "Soal Ujian Parsial 3", Children: []SpecNode{
			{Key: "statement", Title: "Lembar Soal"},
			{Key: "answer_key", Title: "Kunci Jawaban", MinCredits: constants.MinCreditsForFullShape},
		}},
		{Key: "exam_statements_p4", Title: "Soal Ujian Parsial 4", Children: []SpecNode{
			{Key: "statement", Title: "Lembar Soal"},
			{Key: "answer_key", Title: "Kunci Jawaban", MinCredits: constants.MinCreditsForFullShape},
		}},
		{Key: "student_works", Title: "Contoh Karya Mahasiswa"},
		{Key: "final_report", Title: "Laporan Akhir"},
	},
}

// Included: guard SKS untuk satu node.
func (n SpecNode) Included(credits int) bool {
	return n.MinCredits == 0 || credits >= n.MinCredits
}

// CountSpecNodes: jumlah node yang akan dibuat untuk SKS tertentu.
func CountSpecNodes(spec SpecNode, credits int) int {
	if !spec.Included(credits) {
		return 0
	}
	total := 1
	for _, child := range spec.Children {
		total += CountSpecNodes(child, credits)
	}
	return total
}

// CountConditionalSpecNodes: jumlah node yang hanya muncul pada bentuk
// penuh (selisih deterministik antara bentuk minimal dan penuh).
func CountConditionalSpecNodes(spec SpecNode) int {
	return CountSpecNodes(spec, constants.MinCreditsForFullShape) - CountSpecNodes(spec, 1)
}
