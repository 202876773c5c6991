package jsonmodels

import "encoding/json"

// TableItemRequest is the JSON model of a table item lookup.
type TableItemRequest struct {
	KeyType   string          `json:"key_type"`
	ValueType string          `json:"value_type"`
	Key       json.RawMessage `json:"key"`
}
