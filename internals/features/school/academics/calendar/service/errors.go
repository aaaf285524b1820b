// file: internals/features/school/academics/calendar/service/errors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RuleCode: taksonomi kegagalan business-rule kalender.
type RuleCode string

const (
	CodeInvalidRange RuleCode = "invalid_range"
	CodeOverlap      RuleCode = "overlap"
	CodeOutOfBounds  RuleCode = "out_of_bounds"
	CodeLocked       RuleCode = "locked"
)

// RuleError: kondisi yang diharapkan & bisa dikoreksi caller — pesannya
// menyebut entitas yang bermasalah dan dikirim apa adanya (400).
type RuleError struct {
	Code    RuleCode
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func NewRuleError(code RuleCode, message string) *RuleError {
	return &RuleError{Code: code, Message: message}
}

// IsWriteConflict mendeteksi konflik tulis-bersamaan dari storage:
// 40001 = serialization_failure (isolasi serializable),
// 23505 = unique_violation (backstop partial index current-flag).
// Dua-duanya aman untuk di-retry oleh caller.
func IsWriteConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "23505"
	}
	return false
}

// MapError menerjemahkan error hasil unit menjadi (status, message)
// untuk response. System error mengembalikan status 500 dengan pesan
// kosong — caller WAJIB log detail lalu kirim pesan generik.
func MapError(err error) (int, string) {
	var re *RuleError
	if errors.As(err, &re) {
		return fiber.StatusBadRequest, re.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Data tidak ditemukan"
	}
	if IsWriteConflict(err) {
		return fiber.StatusConflict, "Konflik penulisan bersamaan, silakan coba lagi"
	}
	return fiber.StatusInternalServerError, ""
}
