package assistant

import (
	"context"
	"encoding/json"

	"github.com/abfahrtbot/abfahrtbot/pkg/redis_client"
	"github.com/abfahrtbot/abfahrtbot/pkg/speech"
	"github.com/abfahrtbot/abfahrtbot/pkg/stats"
	"github.com/adjust/rmq/v5"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

type IntentBatchConsumer struct {
	Assistant *Assistant

	speechQueue rmq.Queue
}

func NewIntentBatchConsumer(assistant *Assistant) (*IntentBatchConsumer, error) {
	speechQueue, err := redis_client.QueueConnection.OpenQueue(SpeechQueueName)
	if err != nil {
		return nil, err
	}

	return &IntentBatchConsumer{
		Assistant: assistant,

		speechQueue: speechQueue,
	}, nil
}

func (c *IntentBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event IntentEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Failed to decode intent event")
			continue
		}

		log.Debug().Msg(pretty.Sprint(event))

		c.handleIntent(event)
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume intent event")
		}
	}
}

func (c *IntentBatchConsumer) handleIntent(event IntentEvent) {
	if event.Intent != IntentGetTrainTo {
		log.Error().Str("intent", event.Intent).Msg("Unknown intent, ignoring")
		return
	}

	text, err := c.Assistant.Query(context.Background(), event.Slots.Location, NormalizeSlotTime(event.Slots.DepartureTime))
	if err != nil {
		// The user only ever hears the fixed apology, details stay in the logs
		text = speech.Apology
	}

	reply := SpeechReply{
		SessionID: event.SessionID,
		Text:      text,
	}

	replyBytes, _ := json.Marshal(reply)

	if err := c.speechQueue.PublishBytes(replyBytes); err != nil {
		log.Error().Err(err).Str("session", event.SessionID).Msg("Failed to publish speech reply")
		return
	}

	stats.RepliesPublished.Inc()
}
