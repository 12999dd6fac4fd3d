package services

import "ossutracker/models"

// ComputeStats aggregates the whole catalog into summary counts. Counts are a
// partition of the catalog by derived status; time sums include every course
// regardless of lock state.
func ComputeStats(courses []models.Course, records []models.ProgressRecord) models.Stats {
	byCourse := make(map[string]models.ProgressRecord, len(records))
	for _, record := range records {
		byCourse[record.CourseID] = record
	}

	stats := models.Stats{
		TotalCourses:         len(courses),
		CoursesPerCurriculum: make(map[string]int),
	}

	for _, course := range courses {
		record := byCourse[course.ID]

		switch models.StatusForProgress(record.Progress) {
		case models.StatusCompleted:
			stats.CompletedCourses++
		case models.StatusInProgress:
			stats.InProgressCourses++
		default:
			stats.NotStartedCourses++
		}

		stats.TotalTimeEstimated += course.TimeEstimated
		stats.TotalTimeActual += record.TimeActual
		stats.CoursesPerCurriculum[course.Curriculum]++
	}

	if stats.TotalCourses > 0 {
		stats.CompletionPercentage = 100 * float64(stats.CompletedCourses) / float64(stats.TotalCourses)
	}
	return stats
}
