package main

import (
	"os"
	"time"

	"github.com/abfahrtbot/abfahrtbot/pkg/api"
	"github.com/abfahrtbot/abfahrtbot/pkg/assistant"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ABFAHRTBOT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ABFAHRTBOT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "abfahrtbot",
		Description: "Voice assistant backend for RMV journey queries - runs all the services",

		Commands: []*cli.Command{
			assistant.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
