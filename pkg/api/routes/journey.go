package routes

import (
	"errors"
	"net/url"

	"github.com/abfahrtbot/abfahrtbot/pkg/assistant"
	"github.com/abfahrtbot/abfahrtbot/pkg/rmv"
	"github.com/abfahrtbot/abfahrtbot/pkg/speech"
	"github.com/gofiber/fiber/v2"
)

func JourneyRouter(router fiber.Router, journeyAssistant *assistant.Assistant) {
	router.Get("/:destination", getJourneyToDestination(journeyAssistant))
}

func getJourneyToDestination(journeyAssistant *assistant.Assistant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		destination, err := url.PathUnescape(c.Params("destination"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter destination is not a valid path segment",
			})
		}

		departureTime := c.Query("time")
		shortForm := c.QueryBool("short", journeyAssistant.Config.ShortAnswers)

		itinerary, err := journeyAssistant.Plan(c.Context(), destination, departureTime)
		if err != nil {
			if errors.Is(err, rmv.ErrStopNotFound) {
				c.SendStatus(fiber.StatusNotFound)
			} else {
				c.SendStatus(fiber.StatusBadGateway)
			}

			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"response":  speech.Synthesize(itinerary, shortForm),
			"itinerary": itinerary,
		})
	}
}
