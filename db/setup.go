package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Connect opens the backing store. An empty DSN falls back to an ephemeral
// in-memory sqlite database for local development; nothing persists across
// restarts in that mode. TranslateError is required so the stores can map
// unique-index violations onto their Conflict error.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{TranslateError: true}

	if dsn == "" {
		log.Println("DATABASE_URL not set, using in-memory sqlite database")
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), config)
	}

	return gorm.Open(postgres.Open(dsn), config)
}

func Migrate(gdb *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Plan{},
		&models.Membership{},
		&models.Event{},
		&models.Run{},
	}

	migrator := gdb.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := gdb.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
