package jsonmodels

import "encoding/json"

const (
	// TypePendingTransaction marks a transaction that is known to the node but not yet committed.
	TypePendingTransaction = "pending_transaction"
	// TypeUserTransaction marks a committed transaction that was submitted by a user.
	TypeUserTransaction = "user_transaction"
)

// Transaction is the JSON model of a transaction as served by the node.
// Pending transactions carry no version, gas usage or success flag yet.
type Transaction struct {
	Type                    string          `json:"type"`
	Hash                    string          `json:"hash"`
	Version                 string          `json:"version,omitempty"`
	Sender                  string          `json:"sender,omitempty"`
	SequenceNumber          string          `json:"sequence_number,omitempty"`
	MaxGasAmount            string          `json:"max_gas_amount,omitempty"`
	GasUnitPrice            string          `json:"gas_unit_price,omitempty"`
	GasUsed                 string          `json:"gas_used,omitempty"`
	ExpirationTimestampSecs string          `json:"expiration_timestamp_secs,omitempty"`
	Success                 bool            `json:"success,omitempty"`
	VMStatus                string          `json:"vm_status,omitempty"`
	Timestamp               string          `json:"timestamp,omitempty"`
	Payload                 json.RawMessage `json:"payload,omitempty"`
	Events                  []Event         `json:"events,omitempty"`
}

// Pending returns true if the transaction has not been committed yet.
func (t *Transaction) Pending() bool {
	return t.Type == TypePendingTransaction
}

// SubmitTransactionRequest is the JSON model of a signed transaction submission.
type SubmitTransactionRequest struct {
	Sender                  string          `json:"sender"`
	SequenceNumber          string          `json:"sequence_number"`
	MaxGasAmount            string          `json:"max_gas_amount"`
	GasUnitPrice            string          `json:"gas_unit_price"`
	ExpirationTimestampSecs string          `json:"expiration_timestamp_secs"`
	Payload                 json.RawMessage `json:"payload"`
	Signature               json.RawMessage `json:"signature"`
}
