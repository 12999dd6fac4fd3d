// Package validators holds request-validation middlewares. Each handler
// parses the body, collects per-field error messages and stashes the
// validated payload in c.Locals for the controller.
package validators

import (
	"ossutracker/models"
	"ossutracker/utils"

	"github.com/gofiber/fiber/v2"
)

// AutoUpdateInput is the payload for the time-based progress update.
type AutoUpdateInput struct {
	HoursStudied int `json:"hours_studied"`
}

// UpdateProgress validates a partial progress update. Progress must stay in
// [0,100] and time_actual non-negative; status is not accepted at all.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(models.ProgressUpdate)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
			errors["progress"] = "Progress must be between 0 and 100!"
		}
		if input.TimeActual != nil && *input.TimeActual < 0 {
			errors["time_actual"] = "Time actual must not be negative!"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedProgress", input)
		return c.Next()
	}
}

// AutoUpdate validates the hours_studied payload.
func AutoUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(AutoUpdateInput)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if input.HoursStudied <= 0 {
			errors["hours_studied"] = "Hours studied must be greater than 0!"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedAutoUpdate", input)
		return c.Next()
	}
}
