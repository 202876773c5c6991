package jsonmodels

import "encoding/json"

// AccountData is the JSON model of the core account data stored on chain.
type AccountData struct {
	SequenceNumber    string `json:"sequence_number"`
	AuthenticationKey string `json:"authentication_key"`
}

// AccountResource is the JSON model of a typed resource under an account.
// Data is kept raw since its shape depends on the resource type.
type AccountResource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MoveModule is the JSON model of a module published under an account.
type MoveModule struct {
	Bytecode string          `json:"bytecode"`
	ABI      json.RawMessage `json:"abi,omitempty"`
}
