package services

import (
	"ossutracker/models"
	"ossutracker/repository"
)

// SyncResult reports what a catalog sync did.
type SyncResult struct {
	SyncedNew    int `json:"synced_new"`
	TotalCourses int `json:"total_courses"`
}

// SyncCatalog reconciles the static catalog with the store: every catalog
// course gets its definition and a default progress record inserted if
// absent. Existing records are never touched, so running sync repeatedly
// after user edits is safe and reports synced_new = 0.
func SyncCatalog(store repository.Store, catalog []models.Course) (SyncResult, error) {
	result := SyncResult{TotalCourses: len(catalog)}

	for _, course := range catalog {
		if _, err := store.InsertCourseIfAbsent(course); err != nil {
			return SyncResult{}, err
		}
		_, created, err := store.EnsureRecord(course.ID)
		if err != nil {
			return SyncResult{}, err
		}
		if created {
			result.SyncedNew++
		}
	}
	return result, nil
}
