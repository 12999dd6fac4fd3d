package controllers

import (
	"errors"

	"ossutracker/models"
	"ossutracker/repository"
	"ossutracker/services"
	"ossutracker/utils"
	"ossutracker/validators"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store repository.Store
}

func NewCoursesController(store repository.Store) *CoursesController {
	return &CoursesController{Store: store}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns the decorated course views, optionally filtered
// @Tags courses
// @Produce json
// @Param curriculum query string false "exact curriculum match"
// @Param category query string false "exact category match"
// @Param status query string false "exact status match"
// @Param search query string false "case-insensitive title/description search"
// @Success 200 {array} models.CourseView
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	views, err := cc.decorateAll()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	filter := services.Filter{
		Curriculum: c.Query("curriculum"),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}
	return c.JSON(filter.Apply(views))
}

// GetCourse godoc
// @Summary Get one course
// @Description Returns a single decorated course view, creating a default
// progress record when the course has never been touched
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} models.CourseView
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Store.CourseByID(c.Params("id"))
	if errors.Is(err, repository.ErrCourseNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	record, _, err := cc.Store.EnsureRecord(course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return cc.respondWithView(c, course, record)
}

// UpdateProgress godoc
// @Summary Update course progress
// @Description Applies a partial progress update; status is recomputed from
// the new percentage, never taken from the request
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} models.CourseView
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /courses/{id}/progress [put]
func (cc *CoursesController) UpdateProgress(c *fiber.Ctx) error {
	course, err := cc.Store.CourseByID(c.Params("id"))
	if errors.Is(err, repository.ErrCourseNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	input := c.Locals("validatedProgress").(*models.ProgressUpdate)

	record, err := cc.Store.UpdateRecord(course.ID, *input)
	if errors.Is(err, repository.ErrProgressRange) || errors.Is(err, repository.ErrNegativeTime) {
		return utils.ValidationError(c, map[string]string{"progress": err.Error()})
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return cc.respondWithView(c, course, record)
}

// AutoUpdateProgress godoc
// @Summary Record study hours
// @Description Adds studied hours to the course and derives the completion
// percentage from time spent against the estimated hours
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} models.CourseView
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/auto-update [post]
func (cc *CoursesController) AutoUpdateProgress(c *fiber.Ctx) error {
	course, err := cc.Store.CourseByID(c.Params("id"))
	if errors.Is(err, repository.ErrCourseNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	record, _, err := cc.Store.EnsureRecord(course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	input := c.Locals("validatedAutoUpdate").(*validators.AutoUpdateInput)

	update := services.ApplyStudyHours(course, record, input.HoursStudied)
	record, err = cc.Store.UpdateRecord(course.ID, update)
	if err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return cc.respondWithView(c, course, record)
}

// decorateAll reads the full catalog and snapshot and recomputes every view.
// Unlock state is never cached; it is derived on each read.
func (cc *CoursesController) decorateAll() ([]models.CourseView, error) {
	courses, err := cc.Store.Courses()
	if err != nil {
		return nil, err
	}
	records, err := cc.Store.Records()
	if err != nil {
		return nil, err
	}
	return services.Decorate(courses, records), nil
}

func (cc *CoursesController) respondWithView(c *fiber.Ctx, course models.Course, record models.ProgressRecord) error {
	records, err := cc.Store.Records()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	view := services.DecorateOne(course, record, services.SnapshotOf(records))
	return c.JSON(view)
}
