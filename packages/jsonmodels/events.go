package jsonmodels

import "encoding/json"

// Event is the JSON model of an event emitted by a transaction.
type Event struct {
	Key            string          `json:"key"`
	SequenceNumber string          `json:"sequence_number"`
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
}
