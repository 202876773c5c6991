package client

import (
	"net/http"
	"time"
)

// Option is a function that configures a RestClient.
type Option func(*RestClient)

// WithHTTPClient sets the http client that is used for the requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(api *RestClient) {
		api.httpClient = httpClient
	}
}

// WithPollInterval sets the delay between two transaction status polls.
func WithPollInterval(interval time.Duration) Option {
	return func(api *RestClient) {
		api.pollInterval = interval
	}
}

// WithPollTimeout sets the time after which waiting for a transaction gives up.
func WithPollTimeout(timeout time.Duration) Option {
	return func(api *RestClient) {
		api.pollTimeout = timeout
	}
}
