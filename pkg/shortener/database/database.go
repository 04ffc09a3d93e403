package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at the given path.
// TranslateError is enabled so unique-constraint violations come back as
// gorm.ErrDuplicatedKey, which the links service relies on to detect short
// code collisions.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}
