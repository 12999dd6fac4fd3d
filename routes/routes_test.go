package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"ossutracker/models"
	"ossutracker/repository"
	"ossutracker/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, catalog []models.Course) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.ProgressRecord{}))

	app := fiber.New()
	SetupRoutes(app, repository.NewGormStore(db), catalog, seed.Curricula())
	return app
}

func testCatalog() []models.Course {
	return []models.Course{
		{
			ID:            "course-a",
			Title:         "Course A",
			Description:   "The foundation course",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Intro CS",
			TimeEstimated: 50,
		},
		{
			ID:            "course-b",
			Title:         "Course B",
			Description:   "Builds on Course A",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: datatypes.JSONSlice[string]{"course-a"},
			TimeEstimated: 80,
		},
		{
			ID:            "course-c",
			Title:         "Course C",
			Description:   "Has a prerequisite nobody knows",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Introduction to Data Science",
			Prerequisites: datatypes.JSONSlice[string]{"ghost-course"},
			TimeEstimated: 20,
		},
	}
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func syncAll(t *testing.T, app *fiber.App) {
	t.Helper()
	status, _ := doJSON(t, app, "POST", "/api/sync", nil)
	require.Equal(t, fiber.StatusOK, status)
}

func viewByID(t *testing.T, views []models.CourseView, id string) models.CourseView {
	t.Helper()
	for _, view := range views {
		if view.ID == id {
			return view
		}
	}
	t.Fatalf("course %s not in response", id)
	return models.CourseView{}
}

func listCourses(t *testing.T, app *fiber.App, query string) []models.CourseView {
	t.Helper()
	status, body := doJSON(t, app, "GET", "/api/courses"+query, nil)
	require.Equal(t, fiber.StatusOK, status)

	var views []models.CourseView
	require.NoError(t, json.Unmarshal(body, &views))
	return views
}

func TestSyncEndpoint(t *testing.T) {
	app := newTestApp(t, testCatalog())

	status, body := doJSON(t, app, "POST", "/api/sync", nil)
	assert.Equal(t, fiber.StatusOK, status)

	var result map[string]int
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 3, result["synced_new"])
	assert.Equal(t, 3, result["total_courses"])

	// Second sync changes nothing
	status, body = doJSON(t, app, "POST", "/api/sync", nil)
	assert.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 0, result["synced_new"])
	assert.Equal(t, 3, result["total_courses"])
}

func TestUnlockScenario(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	// After sync, A is open, B locked behind it
	views := listCourses(t, app, "")
	assert.True(t, viewByID(t, views, "course-a").IsUnlocked)
	assert.False(t, viewByID(t, views, "course-b").IsUnlocked)

	// A at 79: B stays locked
	status, _ := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 79})
	require.Equal(t, fiber.StatusOK, status)
	views = listCourses(t, app, "")
	assert.False(t, viewByID(t, views, "course-b").IsUnlocked)

	// A at 80: B unlocks
	status, _ = doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 80})
	require.Equal(t, fiber.StatusOK, status)
	views = listCourses(t, app, "")
	assert.True(t, viewByID(t, views, "course-b").IsUnlocked)

	// A at 100: completed, B still unlocked
	status, body := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 100})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.CourseView
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, models.StatusCompleted, updated.Status)

	views = listCourses(t, app, "")
	assert.True(t, viewByID(t, views, "course-b").IsUnlocked)
}

func TestDanglingPrerequisiteBlocksQuietly(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	views := listCourses(t, app, "")
	assert.False(t, viewByID(t, views, "course-c").IsUnlocked)
}

func TestUpdateProgressValidation(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	for _, bad := range []float64{-1, 101} {
		status, _ := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
			map[string]interface{}{"progress": bad})
		assert.Equal(t, fiber.StatusUnprocessableEntity, status, "progress %v", bad)
	}

	// The record is untouched
	status, body := doJSON(t, app, "GET", "/api/courses/course-a", nil)
	require.Equal(t, fiber.StatusOK, status)
	var view models.CourseView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 0.0, view.Progress)
	assert.Equal(t, models.StatusNotStarted, view.Status)
}

func TestUpdateProgressUnknownCourse(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	status, _ := doJSON(t, app, "PUT", "/api/courses/nope/progress",
		map[string]interface{}{"progress": 10})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "GET", "/api/courses/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestStatusNeverSettableFromWire(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	status, body := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 50, "status": "completed"})
	require.Equal(t, fiber.StatusOK, status)

	var view models.CourseView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, models.StatusInProgress, view.Status)
}

func TestFilterEndpoint(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	status, _ := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 100})
	require.Equal(t, fiber.StatusOK, status)

	views := listCourses(t, app, "?curriculum=data_science")
	assert.Len(t, views, 1)
	assert.Equal(t, "course-c", views[0].ID)

	views = listCourses(t, app, "?curriculum=computer_science&status=completed")
	assert.Len(t, views, 1)
	assert.Equal(t, "course-a", views[0].ID)

	views = listCourses(t, app, "?search=builds+on")
	assert.Len(t, views, 1)
	assert.Equal(t, "course-b", views[0].ID)
}

func TestAutoUpdateEndpoint(t *testing.T) {
	app := newTestApp(t, testCatalog())
	syncAll(t, app)

	// 25 of 50 estimated hours puts course-a at 50%
	status, body := doJSON(t, app, "POST", "/api/courses/course-a/auto-update",
		map[string]interface{}{"hours_studied": 25})
	require.Equal(t, fiber.StatusOK, status)

	var view models.CourseView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 25, view.TimeActual)
	assert.Equal(t, 50.0, view.Progress)
	assert.Equal(t, models.StatusInProgress, view.Status)

	status, _ = doJSON(t, app, "POST", "/api/courses/course-a/auto-update",
		map[string]interface{}{"hours_studied": 0})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestStatsEndpoint(t *testing.T) {
	app := newTestApp(t, testCatalog())

	// Empty store: no divide-by-zero, everything zero
	status, body := doJSON(t, app, "GET", "/api/stats", nil)
	require.Equal(t, fiber.StatusOK, status)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0.0, stats.CompletionPercentage)

	syncAll(t, app)
	st, _ := doJSON(t, app, "PUT", "/api/courses/course-a/progress",
		map[string]interface{}{"progress": 100, "time_actual": 48})
	require.Equal(t, fiber.StatusOK, st)

	status, body = doJSON(t, app, "GET", "/api/stats", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &stats))

	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 2, stats.NotStartedCourses)
	assert.InDelta(t, 100.0/3, stats.CompletionPercentage, 0.01)
	assert.Equal(t, 150, stats.TotalTimeEstimated)
	assert.Equal(t, 48, stats.TotalTimeActual)
	assert.Equal(t, 2, stats.CoursesPerCurriculum[models.CurriculumComputerScience])
}

func TestCurriculaEndpoint(t *testing.T) {
	app := newTestApp(t, testCatalog())

	status, body := doJSON(t, app, "GET", "/api/curricula", nil)
	require.Equal(t, fiber.StatusOK, status)

	var curricula []models.CurriculumInfo
	require.NoError(t, json.Unmarshal(body, &curricula))
	require.Len(t, curricula, 5)

	types := make([]string, 0, len(curricula))
	for _, info := range curricula {
		types = append(types, info.Type)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.GithubURL)
	}
	assert.ElementsMatch(t, models.Curricula, types)
}

func TestRootBanner(t *testing.T) {
	app := newTestApp(t, testCatalog())

	status, body := doJSON(t, app, "GET", "/api/", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "OSSU Course Tracker API")
}

func TestSeedCatalogIsConsistent(t *testing.T) {
	catalog := seed.Courses()
	require.NotEmpty(t, catalog)

	ids := make(map[string]bool, len(catalog))
	for _, course := range catalog {
		require.False(t, ids[course.ID], "duplicate id %s", course.ID)
		ids[course.ID] = true
	}

	// Every prerequisite in the shipped catalog resolves to a real course
	for _, course := range catalog {
		for _, prereqID := range course.Prerequisites {
			assert.True(t, ids[prereqID],
				fmt.Sprintf("%s lists unknown prerequisite %s", course.ID, prereqID))
		}
	}
}
