// Package services holds the pure course-tracking logic: prerequisite
// gating, statistics, catalog sync and the filter layer. Everything here
// operates on plain values and never mutates its inputs, so it is safe to
// call from concurrent readers.
package services

import "ossutracker/models"

// UnlockThreshold is the completion percentage every direct prerequisite must
// reach before a course is considered unlocked.
const UnlockThreshold = 80.0

// Snapshot maps course id to current completion percentage. Courses without a
// record simply have no entry, which reads as 0.
type Snapshot map[string]float64

// SnapshotOf builds a progress snapshot from the stored records.
func SnapshotOf(records []models.ProgressRecord) Snapshot {
	snapshot := make(Snapshot, len(records))
	for _, record := range records {
		snapshot[record.CourseID] = record.Progress
	}
	return snapshot
}

// IsUnlocked reports whether a course is open for study: no prerequisites, or
// every listed prerequisite at or above the unlock threshold. This is a
// single-hop check over the prerequisites' stored percentages; it never
// follows the prerequisite chain further, so cycles, self-references and ids
// that do not exist in the snapshot (they count as 0) are all harmless.
func IsUnlocked(course models.Course, snapshot Snapshot) bool {
	for _, prereqID := range course.Prerequisites {
		if snapshot[prereqID] < UnlockThreshold {
			return false
		}
	}
	return true
}

// Decorate merges the catalog with the progress records into the flattened
// view the API serves, computing status and is_unlocked fresh from the
// snapshot. Courses without a record get the defaults (progress 0,
// not_started).
func Decorate(courses []models.Course, records []models.ProgressRecord) []models.CourseView {
	byCourse := make(map[string]models.ProgressRecord, len(records))
	for _, record := range records {
		byCourse[record.CourseID] = record
	}
	snapshot := SnapshotOf(records)

	views := make([]models.CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, DecorateOne(course, byCourse[course.ID], snapshot))
	}
	return views
}

// DecorateOne builds the view for a single course against a full snapshot.
// The record may be the zero value when none exists yet.
func DecorateOne(course models.Course, record models.ProgressRecord, snapshot Snapshot) models.CourseView {
	return models.CourseView{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		Curriculum:    course.Curriculum,
		Category:      course.Category,
		Prerequisites: course.Prerequisites,
		Duration:      course.Duration,
		Effort:        course.Effort,
		URL:           course.URL,
		TimeEstimated: course.TimeEstimated,
		Progress:      record.Progress,
		TimeActual:    record.TimeActual,
		Notes:         record.Notes,
		Status:        models.StatusForProgress(record.Progress),
		IsUnlocked:    IsUnlocked(course, snapshot),
		UpdatedAt:     record.UpdatedAt,
	}
}
