// file: internals/features/school/academics/calendar/service/uow.go
package service

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// RunUnit menjalankan rangkaian read-validate-write sebagai satu unit
// di snapshot transaksi SERIALIZABLE: check overlap/current membaca
// snapshot yang sama dengan write yang akan di-commit, jadi dua insert
// "kelihatan tidak bertabrakan" yang berjalan paralel akan memicu 40001
// pada salah satunya alih-alih merusak invariant.
//
// Error apa pun dari fn membatalkan seluruh unit — storage tidak berubah
// sama sekali. Pembatalan context (request abort / timeout) juga rollback.
func RunUnit(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
}
