package services

import (
	"testing"

	"ossutracker/models"
	"ossutracker/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSyncStore(t *testing.T) repository.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.ProgressRecord{}))
	return repository.NewGormStore(db)
}

func TestSyncCatalogInsertsDefaults(t *testing.T) {
	store := newSyncStore(t)
	catalog := []models.Course{course("a"), course("b", "a")}

	result, err := SyncCatalog(store, catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedNew)
	assert.Equal(t, 2, result.TotalCourses)

	record, err := store.RecordByCourseID("a")
	require.NoError(t, err)
	assert.Equal(t, 0.0, record.Progress)
	assert.Equal(t, models.StatusNotStarted, record.Status)
}

func TestSyncCatalogIdempotent(t *testing.T) {
	store := newSyncStore(t)
	catalog := []models.Course{course("a"), course("b", "a")}

	_, err := SyncCatalog(store, catalog)
	require.NoError(t, err)

	// User edits progress between syncs
	progress := 55.0
	notes := "halfway"
	hours := 7
	_, err = store.UpdateRecord("a", models.ProgressUpdate{
		Progress:   &progress,
		TimeActual: &hours,
		Notes:      &notes,
	})
	require.NoError(t, err)

	result, err := SyncCatalog(store, catalog)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SyncedNew)
	assert.Equal(t, 2, result.TotalCourses)

	record, err := store.RecordByCourseID("a")
	require.NoError(t, err)
	assert.Equal(t, 55.0, record.Progress)
	assert.Equal(t, 7, record.TimeActual)
	assert.Equal(t, "halfway", record.Notes)
}

func TestSyncCatalogPicksUpNewCourses(t *testing.T) {
	store := newSyncStore(t)

	_, err := SyncCatalog(store, []models.Course{course("a")})
	require.NoError(t, err)

	// The catalog grows; only the new course is synced
	result, err := SyncCatalog(store, []models.Course{course("a"), course("b", "a")})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SyncedNew)
	assert.Equal(t, 2, result.TotalCourses)
}
