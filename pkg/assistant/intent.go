package assistant

import "strings"

const (
	IntentQueueName = "voice-intents-queue"
	SpeechQueueName = "speech-queue"

	// IntentGetTrainTo is the only intent this service answers
	IntentGetTrainTo = "getTrainTo"
)

// IntentEvent is a decoded voice intent as published by the dialogue frontend.
// One event corresponds to one user utterance.
type IntentEvent struct {
	SessionID string      `json:"sessionId"`
	Intent    string      `json:"intent"`
	Slots     IntentSlots `json:"slots"`
}

type IntentSlots struct {
	Location      string `json:"location"`
	DepartureTime string `json:"departureTime"`
}

// SpeechReply is the answer published back for the speech subsystem, either
// the synthesized itinerary or the apology.
type SpeechReply struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

// NormalizeSlotTime reduces a departure time slot value to the HH:MM:SS form
// the trip service expects. Slot values arrive as full datetimes like
// "2019-08-26 18:30:00 +00:00".
func NormalizeSlotTime(value string) string {
	value, _, _ = strings.Cut(value, "+")
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}
