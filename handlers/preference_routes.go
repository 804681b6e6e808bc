package handlers

import (
	"pugorugh/middleware"
	"pugorugh/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPreferenceRoutes(app *fiber.App, svc *services.MatchService) {
	user := app.Group("/api/user")

	user.Get("/preferences", func(c *fiber.Ctx) error {
		pref, err := svc.GetPreferences(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err, "preferences")
		}
		return c.JSON(pref)
	})

	// Any change resets the caller's decisions.
	user.Put("/preferences", func(c *fiber.Ctx) error {
		var in services.PreferenceInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "invalid preferences body", err)
		}
		pref, err := svc.SetPreferences(c.UserContext(), middleware.UserID(c), in)
		if err != nil {
			return serviceError(c, err, "preferences")
		}
		return c.JSON(pref)
	})

	user.Get("/decisions/summary", func(c *fiber.Ctx) error {
		sum, err := svc.Summarize(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err, "summary")
		}
		return c.JSON(sum)
	})
}
