package api

import (
	"github.com/abfahrtbot/abfahrtbot/pkg/api/routes"
	"github.com/abfahrtbot/abfahrtbot/pkg/assistant"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, journeyAssistant *assistant.Assistant) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/voice")

	group.Get("version", routes.APIVersion)

	routes.JourneyRouter(group.Group("/journey"), journeyAssistant)

	return webApp.Listen(listen)
}
