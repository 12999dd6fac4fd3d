package controllers

import (
	"ossutracker/models"
	"ossutracker/repository"
	"ossutracker/services"
	"ossutracker/utils"

	"github.com/gofiber/fiber/v2"
)

type SyncController struct {
	Store   repository.Store
	Catalog []models.Course
}

func NewSyncController(store repository.Store, catalog []models.Course) *SyncController {
	return &SyncController{Store: store, Catalog: catalog}
}

// SyncCourses godoc
// @Summary Sync the course catalog
// @Description Inserts missing catalog courses and default progress records;
// existing progress is never overwritten
// @Tags sync
// @Produce json
// @Success 200 {object} services.SyncResult
// @Router /sync [post]
func (sc *SyncController) SyncCourses(c *fiber.Ctx) error {
	result, err := services.SyncCatalog(sc.Store, sc.Catalog)
	if err != nil {
		return utils.InternalServerError(c, "Could not sync courses")
	}
	return c.JSON(result)
}
