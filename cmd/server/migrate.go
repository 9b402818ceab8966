package main

import (
	"database/sql"

	"github.com/jengzang/gpx-pace-backend/internal/database"
)

// migrateSchema applies pending migrations, or undoes the latest one when
// rollback is set
func migrateSchema(db *sql.DB, rollback bool) error {
	if rollback {
		return database.MigrateDown(db)
	}
	return database.MigrateUp(db)
}
