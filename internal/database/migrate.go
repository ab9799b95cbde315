package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// EnsureSchema migrates the store, treating an unreadable database file as an
// empty store: the corrupt file is set aside with a .corrupt suffix and a
// fresh database is created in its place.
func EnsureSchema(dbPath, migrationsPath string) error {
	err := RunMigrations(dbPath, migrationsPath)
	if err == nil || !isNotADatabase(err) {
		return err
	}
	if mvErr := os.Rename(dbPath, dbPath+".corrupt"); mvErr != nil {
		return fmt.Errorf("set aside corrupt database: %w", mvErr)
	}
	return RunMigrations(dbPath, migrationsPath)
}

// isNotADatabase matches sqlite's SQLITE_NOTADB by message; migrate flattens
// the driver error, so the code is not recoverable from the error chain.
func isNotADatabase(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not a database")
}

// RunMigrations applies all up migrations found at path.
func RunMigrations(dbPath, migrationsPath string) error {
	dsn := fmt.Sprintf("sqlite3://%s?_foreign_keys=on", dbPath)

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// RunMigrationsWithDB allows reuse of an existing *sql.DB.
func RunMigrationsWithDB(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite3",
		driver,
	)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}
