// Package client implements a very simple wrapper for the node's REST API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
	// ErrNotImplemented defines the "operation not implemented/supported/available" error.
	ErrNotImplemented = errors.New("operation not implemented/supported/available")
)

const (
	contentTypeJSON = "application/json"

	// DevnetURL is the URL of the public devnet fullnode API.
	DevnetURL = "https://fullnode.devnet.aptoslabs.com"
	// DevnetFaucetURL is the URL of the public devnet faucet.
	DevnetFaucetURL = "https://faucet.devnet.aptoslabs.com"

	// DefaultPollInterval is the delay between two transaction status polls.
	DefaultPollInterval = 1 * time.Second
	// DefaultPollTimeout is the time after which waiting for a transaction gives up.
	DefaultPollTimeout = 10 * time.Second
)

// NewRestClient returns a new *RestClient for the API served at baseURL.
func NewRestClient(baseURL string, setters ...Option) *RestClient {
	api := &RestClient{
		baseURL:      baseURL,
		httpClient:   &http.Client{},
		pollInterval: DefaultPollInterval,
		pollTimeout:  DefaultPollTimeout,
	}
	for _, setter := range setters {
		setter(api)
	}
	return api
}

// RestClient is an API wrapper over the REST API of a fullnode.
type RestClient struct {
	httpClient   *http.Client
	baseURL      string
	pollInterval time.Duration
	pollTimeout  time.Duration
}

type errorresponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func interpretBody(res *http.Response, decodeTo interface{}) error {
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("unable to read response body: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusCreated {
		if decodeTo == nil {
			return nil
		}
		return json.Unmarshal(resBody, decodeTo)
	}

	errRes := &errorresponse{}
	if err := json.Unmarshal(resBody, errRes); err != nil {
		errRes.Message = string(resBody)
	}

	switch res.StatusCode {
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, errRes.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, res.Request.URL.String())
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errRes.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, errRes.Message)
	case http.StatusNotImplemented:
		return fmt.Errorf("%w: %s", ErrNotImplemented, errRes.Message)
	}

	return fmt.Errorf("%w: %s", ErrUnknownError, errRes.Message)
}

func (api *RestClient) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	// marshal request object
	var data []byte
	if reqObj != nil {
		var err error
		data, err = json.Marshal(reqObj)
		if err != nil {
			return err
		}
	}

	// construct request
	req, err := http.NewRequest(method, fmt.Sprintf("%s/%s", api.baseURL, route), func() io.Reader {
		if data == nil {
			return nil
		}
		return bytes.NewReader(data)
	}())
	if err != nil {
		return err
	}

	if data != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	// make the request
	res, err := api.httpClient.Do(req)
	if err != nil {
		return err
	}

	// write response into response object
	if err := interpretBody(res, resObj); err != nil {
		return err
	}
	return nil
}

// BaseURL returns the baseURL of the API.
func (api *RestClient) BaseURL() string {
	return api.baseURL
}

// Close releases the idle connections held by the underlying HTTP client.
// It is safe to call more than once.
func (api *RestClient) Close() {
	api.httpClient.CloseIdleConnections()
}
