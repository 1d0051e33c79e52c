package services

import (
	"testing"

	"github.com/jakhongirov/lazuno/models"
	"github.com/jakhongirov/lazuno/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database with the full schema and
// foreign keys enforced, so cascades behave like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	))
	return db
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(t.TempDir(), "http://localhost:8080", zerolog.Nop())
	require.NoError(t, err)
	return store
}
