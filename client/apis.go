package client

import (
	"errors"
	"fmt"
	"sync"
)

// Names of the resources resolvable through APIs.
const (
	ResourceAccounts     = "accounts"
	ResourceEvents       = "events"
	ResourceGeneral      = "general"
	ResourceTables       = "tables"
	ResourceTransactions = "transactions"
)

// ErrUnknownResource defines the "unknown API resource" error.
var ErrUnknownResource = errors.New("unknown API resource")

// APIs resolves logical resource names to their API clients on top of a shared
// RestClient. Clients are constructed lazily, at most once, on first use.
// Callers that need only a single resource should construct it directly via
// its New*API constructor instead of going through the registry.
type APIs struct {
	rest *RestClient

	mu        sync.Mutex
	resources map[string]interface{}
}

// NewAPIs returns a new *APIs registry on top of the given RestClient.
func NewAPIs(rest *RestClient) *APIs {
	return &APIs{
		rest:      rest,
		resources: make(map[string]interface{}),
	}
}

// Resource resolves the API client registered under the given resource name,
// constructing it on first use. Unknown names yield ErrUnknownResource.
func (a *APIs) Resource(name string) (interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if res, exists := a.resources[name]; exists {
		return res, nil
	}

	var res interface{}
	switch name {
	case ResourceAccounts:
		res = NewAccountsAPI(a.rest)
	case ResourceEvents:
		res = NewEventsAPI(a.rest)
	case ResourceGeneral:
		res = NewGeneralAPI(a.rest)
	case ResourceTables:
		res = NewTablesAPI(a.rest)
	case ResourceTransactions:
		res = NewTransactionsAPI(a.rest)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	a.resources[name] = res

	return res, nil
}

// Accounts returns the AccountsAPI of the registry.
func (a *APIs) Accounts() *AccountsAPI {
	res, _ := a.Resource(ResourceAccounts)
	return res.(*AccountsAPI)
}

// Events returns the EventsAPI of the registry.
func (a *APIs) Events() *EventsAPI {
	res, _ := a.Resource(ResourceEvents)
	return res.(*EventsAPI)
}

// General returns the GeneralAPI of the registry.
func (a *APIs) General() *GeneralAPI {
	res, _ := a.Resource(ResourceGeneral)
	return res.(*GeneralAPI)
}

// Tables returns the TablesAPI of the registry.
func (a *APIs) Tables() *TablesAPI {
	res, _ := a.Resource(ResourceTables)
	return res.(*TablesAPI)
}

// Transactions returns the TransactionsAPI of the registry.
func (a *APIs) Transactions() *TransactionsAPI {
	res, _ := a.Resource(ResourceTransactions)
	return res.(*TransactionsAPI)
}
