package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abfahrtbot/abfahrtbot/pkg/config"
	"github.com/abfahrtbot/abfahrtbot/pkg/consumer"
	"github.com/abfahrtbot/abfahrtbot/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "assistant",
		Usage: "Provides the voice assistant",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the intent consumer",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					intentConsumer, err := NewIntentBatchConsumer(New(cfg))
					if err != nil {
						return err
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName:       IntentQueueName,
						NumberConsumers: 2,
						BatchSize:       5,
						Timeout:         2 * time.Second,
						Consumer:        intentConsumer,
					}
					redisConsumer.Setup()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "query",
				Usage: "run a single journey query and print the response",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "destination",
						Usage:    "destination stop name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "departure time (HH:MM:SS)",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					response, err := New(cfg).Query(context.Background(), c.String("destination"), c.String("time"))
					if err != nil {
						return err
					}

					fmt.Println(response)

					return nil
				},
			},
			{
				Name:  "test-intent",
				Usage: "publish a test intent event",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "destination",
						Value: "Hauptwache",
						Usage: "destination stop name",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					intentQueue, err := redis_client.QueueConnection.OpenQueue(IntentQueueName)
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to open intent queue")
					}

					event := IntentEvent{
						SessionID: "test-session",
						Intent:    IntentGetTrainTo,
						Slots: IntentSlots{
							Location: c.String("destination"),
						},
					}

					eventBytes, _ := json.Marshal(event)

					if err := intentQueue.PublishBytes(eventBytes); err != nil {
						log.Fatal().Err(err).Msg("Failed to publish test intent")
					}

					return nil
				},
			},
		},
	}
}
