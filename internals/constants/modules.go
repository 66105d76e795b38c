// file: internals/constants/modules.go
package constants

// Nama modul fungsional yang punya gate per siklus akademik.
const (
	ModuleDataIntake         = "data_intake"
	ModuleDocumentManagement = "document_management"
	ModuleVerification       = "verification"
	ModuleReporting          = "reporting"
)

// ModuleSequence adalah urutan enable yang wajib: modul hanya boleh
// di-enable jika semua modul sebelumnya sudah enabled, dan di-disable
// dari belakang (reverse order).
var ModuleSequence = []string{
	ModuleDataIntake,
	ModuleDocumentManagement,
	ModuleVerification,
	ModuleReporting,
}

// MinCreditsForFullShape: subseksi kondisional portofolio hanya dibuat
// kalau SKS mata kuliah >= ambang ini.
const MinCreditsForFullShape = 4

// ModuleIndex mengembalikan posisi modul di ModuleSequence, -1 jika tidak dikenal.
func ModuleIndex(module string) int {
	for i, m := range ModuleSequence {
		if m == module {
			return i
		}
	}
	return -1
}

// IsKnownModule true kalau module ada di ModuleSequence.
func IsKnownModule(module string) bool { return ModuleIndex(module) >= 0 }
