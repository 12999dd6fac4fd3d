package controllers

import (
	"ossutracker/repository"
	"ossutracker/services"
	"ossutracker/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Store repository.Store
}

func NewStatsController(store repository.Store) *StatsController {
	return &StatsController{Store: store}
}

// GetStats godoc
// @Summary Get overall progress statistics
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	courses, err := sc.Store.Courses()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	records, err := sc.Store.Records()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(services.ComputeStats(courses, records))
}
