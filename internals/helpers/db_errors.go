// file: internals/helpers/db_errors.go
package helper

import "strings"

// IsDuplicateKeyErr: deteksi unique violation Postgres (SQLSTATE 23505).
// Driver pgx membungkus kode di pesan error, jadi cek via substring.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
