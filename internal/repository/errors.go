package repository

import (
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound berarti query tidak menemukan baris. Ini hasil kosong yang normal, bukan kegagalan.
	ErrNotFound = errors.New("data tidak ditemukan")
	// ErrDuplicate berarti insert melanggar unique index.
	ErrDuplicate = errors.New("data sudah ada")
)

// mapError menerjemahkan error driver ke error repository. Error lain dikembalikan apa adanya.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}

	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return ErrDuplicate
	}

	return err
}
