package jsonmodels

// LedgerInfo is the JSON model of the ledger information served at the API root.
// Unsigned 64-bit quantities are rendered as decimal strings on the wire.
type LedgerInfo struct {
	ChainID         uint8  `json:"chain_id"`
	Epoch           string `json:"epoch"`
	LedgerVersion   string `json:"ledger_version"`
	LedgerTimestamp string `json:"ledger_timestamp"`
}

// HealthCheckResponse is the JSON model of the node health check endpoint.
type HealthCheckResponse struct {
	Message string `json:"message"`
}
