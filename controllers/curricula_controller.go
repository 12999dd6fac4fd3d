package controllers

import (
	"ossutracker/models"

	"github.com/gofiber/fiber/v2"
)

type CurriculaController struct {
	Curricula []models.CurriculumInfo
}

func NewCurriculaController(curricula []models.CurriculumInfo) *CurriculaController {
	return &CurriculaController{Curricula: curricula}
}

// GetCurricula godoc
// @Summary List the OSSU curricula
// @Tags curricula
// @Produce json
// @Success 200 {array} models.CurriculumInfo
// @Router /curricula [get]
func (cc *CurriculaController) GetCurricula(c *fiber.Ctx) error {
	return c.JSON(cc.Curricula)
}
