package handlers

import (
	"pugorugh/middleware"
	"pugorugh/models"
	"pugorugh/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDogRoutes(app *fiber.App, svc *services.MatchService, images ImageURLer) {
	api := app.Group("/api")

	// next dog after :pk among the caller's eligible dogs with :status
	api.Get("/dog/:pk/:status/next", func(c *fiber.Ctx) error {
		cursor, err := parsePK(c)
		if err != nil {
			return badRequest(c, "invalid dog id", err)
		}
		status := models.ParseStatus(c.Params("status"))

		dog, err := svc.Next(c.UserContext(), middleware.UserID(c), status, cursor)
		if err != nil {
			return serviceError(c, err, "dog")
		}
		p := dogPayload(c.UserContext(), images, *dog)
		p.Status = status.String()
		return c.JSON(p)
	})

	api.Put("/dog/:pk/:status", func(c *fiber.Ctx) error {
		dogID, err := parsePK(c)
		if err != nil {
			return badRequest(c, "invalid dog id", err)
		}
		status := models.ParseStatus(c.Params("status"))

		entry, err := svc.Decide(c.UserContext(), middleware.UserID(c), dogID, status)
		if err != nil {
			return serviceError(c, err, "dog")
		}
		dog, err := svc.Store.GetDog(c.UserContext(), entry.DogID)
		if err != nil {
			return serviceError(c, err, "dog")
		}
		p := dogPayload(c.UserContext(), images, *dog)
		p.Status = entry.Status.String()
		return c.JSON(p)
	})

	api.Get("/dogs", func(c *fiber.Ctx) error {
		dogs, err := svc.Catalog(c.UserContext())
		if err != nil {
			return serviceError(c, err, "dogs")
		}
		out := make([]DogPayload, len(dogs))
		for i, d := range dogs {
			out[i] = dogPayload(c.UserContext(), images, d)
		}
		return c.JSON(out)
	})
}
