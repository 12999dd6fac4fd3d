// Package repository is the persistence boundary: a small course/progress
// record store keyed by course id. Controllers and services depend on the
// Store interface, never on gorm directly.
package repository

import "ossutracker/models"

// Store is the record store contract the rest of the application consumes.
type Store interface {
	// Courses returns the whole catalog in insertion order.
	Courses() ([]models.Course, error)
	// CourseByID returns one course or ErrCourseNotFound.
	CourseByID(id string) (models.Course, error)
	// InsertCourseIfAbsent writes a catalog entry unless one with the same id
	// already exists. Reports whether a row was created.
	InsertCourseIfAbsent(course models.Course) (bool, error)

	// Records returns every progress record.
	Records() ([]models.ProgressRecord, error)
	// RecordByCourseID returns the record for a course or ErrRecordNotFound.
	RecordByCourseID(courseID string) (models.ProgressRecord, error)
	// EnsureRecord returns the record for a course, creating a default one
	// (progress 0, not_started) when none exists yet. Reports whether a row
	// was created.
	EnsureRecord(courseID string) (models.ProgressRecord, bool, error)
	// UpdateRecord applies a partial update to a course's record, recomputing
	// the derived status in the same write. Invalid values fail with
	// ErrProgressRange or ErrNegativeTime and leave the record unchanged.
	UpdateRecord(courseID string, update models.ProgressUpdate) (models.ProgressRecord, error)
}
