package jsonmodels

// ErrorResponse is the JSON model of an error returned by the node API.
type ErrorResponse struct {
	Message     string  `json:"message"`
	ErrorCode   string  `json:"error_code,omitempty"`
	VMErrorCode *uint64 `json:"vm_error_code,omitempty"`
}
