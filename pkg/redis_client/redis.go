package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/abfahrtbot/abfahrtbot/pkg/util"
	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client
var QueueConnection rmq.Connection

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["ABFAHRTBOT_REDIS_ADDRESS"] != "" {
		address = env["ABFAHRTBOT_REDIS_ADDRESS"]
	}

	if env["ABFAHRTBOT_REDIS_PASSWORD"] != "" {
		password = env["ABFAHRTBOT_REDIS_PASSWORD"]
	}

	if env["ABFAHRTBOT_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["ABFAHRTBOT_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	// Redis may still be coming up when we are, so the initial ping retries.
	// This is startup infrastructure only - the query pipeline never retries.
	pingBackoff := backoff.NewExponentialBackOff()
	pingBackoff.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		return Client.Ping(context.Background()).Err()
	}, pingBackoff)
	if err != nil {
		return err
	}

	QueueConnection, err = rmq.OpenConnectionWithRedisClient("abfahrtbot", Client, nil)
	if err != nil {
		return err
	}

	return nil
}
