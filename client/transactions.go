package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

const (
	routeTransactions = "transactions"
)

// TransactionsAPI exposes the transaction query and submission endpoints of the node.
type TransactionsAPI struct {
	rest *RestClient
}

// NewTransactionsAPI returns a new TransactionsAPI that uses the given RestClient.
func NewTransactionsAPI(rest *RestClient) *TransactionsAPI {
	return &TransactionsAPI{rest: rest}
}

// GetTransactions gets committed transactions in version order, starting at the given version.
func (t *TransactionsAPI) GetTransactions(start uint64, limit uint64) ([]jsonmodels.Transaction, error) {
	var res []jsonmodels.Transaction
	route := fmt.Sprintf("%s?start=%d&limit=%d", routeTransactions, start, limit)
	if err := t.rest.do(http.MethodGet, route, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetTransaction gets the transaction with the given hash or version.
func (t *TransactionsAPI) GetTransaction(hashOrVersion string) (*jsonmodels.Transaction, error) {
	return t.rest.getTransaction(hashOrVersion)
}

// GetAccountTransactions gets the committed transactions sent by the given address,
// starting at the given sequence number.
func (t *TransactionsAPI) GetAccountTransactions(address string, start uint64, limit uint64) ([]jsonmodels.Transaction, error) {
	var res []jsonmodels.Transaction
	route := fmt.Sprintf("%s/%s/%s?start=%d&limit=%d", routeAccounts, address, routeTransactions, start, limit)
	if err := t.rest.do(http.MethodGet, route, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SubmitTransaction submits a signed transaction. The node accepts it into its mempool
// and returns the resulting pending transaction.
func (t *TransactionsAPI) SubmitTransaction(req *jsonmodels.SubmitTransactionRequest) (*jsonmodels.Transaction, error) {
	res := &jsonmodels.Transaction{}
	if err := t.rest.do(http.MethodPost, routeTransactions, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// TransactionPending checks whether the transaction with the given hash is still pending.
func (t *TransactionsAPI) TransactionPending(txnHash string) (bool, error) {
	return t.rest.TransactionPending(txnHash)
}

// WaitForTransaction blocks until the transaction with the given hash is settled.
func (t *TransactionsAPI) WaitForTransaction(txnHash string) error {
	return t.rest.WaitForTransaction(txnHash)
}

func (api *RestClient) getTransaction(hashOrVersion string) (*jsonmodels.Transaction, error) {
	res := &jsonmodels.Transaction{}
	if err := api.do(http.MethodGet, fmt.Sprintf("%s/%s", routeTransactions, hashOrVersion), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// TransactionPending checks whether the transaction with the given hash is still pending.
// A transaction the node does not know about yet counts as pending.
func (api *RestClient) TransactionPending(txnHash string) (bool, error) {
	txn, err := api.getTransaction(txnHash)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return txn.Pending(), nil
}

// WaitForTransaction polls the transaction with the given hash until the node has
// committed it. It returns an error if the transaction did not settle within the
// configured poll timeout or if it was committed without success.
func (api *RestClient) WaitForTransaction(txnHash string) error {
	timeoutCounter := time.Duration(0)
	for {
		pending, err := api.TransactionPending(txnHash)
		if err != nil {
			return err
		}
		if !pending {
			break
		}
		time.Sleep(api.pollInterval)
		timeoutCounter += api.pollInterval
		if timeoutCounter > api.pollTimeout {
			return errors.Errorf("transaction %s did not settle within %d seconds", txnHash, api.pollTimeout/time.Second)
		}
	}

	txn, err := api.getTransaction(txnHash)
	if err != nil {
		return err
	}
	if !txn.Success {
		return errors.Errorf("transaction %s failed: %s", txnHash, txn.VMStatus)
	}
	return nil
}
