// file: internals/features/portfolio/cycles/service/errors.go
package service

import "errors"

// Error bertipe yang dipropagasi apa adanya ke caller (tidak pernah
// ditelan). Layer HTTP yang menerjemahkan ke status code.
var (
	// validasi input
	ErrDuplicateName    = errors.New("nama siklus sudah dipakai")
	ErrInvalidDateRange = errors.New("tanggal akhir harus setelah tanggal mulai")

	// pelanggaran state-invariant
	ErrInvalidTransition = errors.New("transisi state tidak valid: harus successor langsung")
	ErrInvalidState      = errors.New("operasi hanya boleh pada siklus preparation")
	ErrCycleNotActive    = errors.New("gate modul hanya boleh diubah pada siklus active")
	ErrSequenceViolation = errors.New("urutan enable/disable modul dilanggar")
	ErrUnknownModule     = errors.New("nama modul tidak dikenal")

	// konflik konkurensi
	ErrConcurrentActivation   = errors.New("siklus lain baru saja diaktifkan, ulangi operasi")
	ErrConcurrentVerification = errors.New("siklus lain sedang dalam tahap verification")

	ErrCycleNotFound = errors.New("siklus tidak ditemukan")
)
