package services

import "ossutracker/models"

// fallbackProgressPerHour is used when a course has no estimated hours:
// one hour of study counts as two percent.
const fallbackProgressPerHour = 2.0

// ApplyStudyHours adds hours of study to a record and derives the new
// completion percentage from time spent against the course's estimated
// hours, capped at 100. The percentage never goes down: an explicit progress
// update stays authoritative over the time-based estimate.
func ApplyStudyHours(course models.Course, record models.ProgressRecord, hours int) models.ProgressUpdate {
	timeActual := record.TimeActual + hours

	var progress float64
	if course.TimeEstimated > 0 {
		progress = 100 * float64(timeActual) / float64(course.TimeEstimated)
	} else {
		progress = float64(timeActual) * fallbackProgressPerHour
	}
	if progress > 100 {
		progress = 100
	}
	if progress < record.Progress {
		progress = record.Progress
	}

	return models.ProgressUpdate{
		Progress:   &progress,
		TimeActual: &timeActual,
	}
}
