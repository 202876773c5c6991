package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

const (
	routeMint = "/mint"
)

// FaucetClient creates and funds accounts through a remote faucet. It is a thin
// wrapper around the faucet's mint endpoint that blocks until the minted
// transactions are settled on chain.
type FaucetClient struct {
	baseURL    string
	restClient *RestClient
	httpClient *resty.Client
}

// NewFaucetClient returns a new *FaucetClient for the faucet served at baseURL.
// The given RestClient is used to wait for the minted transactions; its lifetime
// stays with the caller, but Close delegates to it.
func NewFaucetClient(baseURL string, restClient *RestClient) *FaucetClient {
	return &FaucetClient{
		baseURL:    baseURL,
		restClient: restClient,
		httpClient: resty.New().SetHostURL(baseURL),
	}
}

// BaseURL returns the baseURL of the faucet.
func (f *FaucetClient) BaseURL() string {
	return f.baseURL
}

// FundAccount mints the given amount of coins into the account with the given
// address, creating the account if it does not exist. It waits for every minted
// transaction to settle, in the order returned by the faucet, and only then
// returns. The first failed wait aborts the remaining ones and its error is
// returned unchanged.
func (f *FaucetClient) FundAccount(address string, amount uint64) error {
	res, err := f.httpClient.R().
		Post(fmt.Sprintf("%s?amount=%d&address=%s", routeMint, amount, address))
	if err != nil {
		return err
	}
	if res.StatusCode() != http.StatusOK {
		return errors.Errorf("faucet mint request failed with status %d: %s", res.StatusCode(), res.String())
	}

	var txnHashes []string
	if err := json.Unmarshal(res.Body(), &txnHashes); err != nil {
		return errors.Wrap(err, "unable to parse faucet mint response")
	}

	for _, txnHash := range txnHashes {
		if err := f.restClient.WaitForTransaction(txnHash); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the resources of the underlying RestClient.
func (f *FaucetClient) Close() {
	f.restClient.Close()
}
