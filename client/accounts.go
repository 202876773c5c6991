package client

import (
	"fmt"
	"net/http"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

const (
	routeAccounts = "accounts"
)

// AccountsAPI exposes the account state endpoints of the node.
type AccountsAPI struct {
	rest *RestClient
}

// NewAccountsAPI returns a new AccountsAPI that uses the given RestClient.
func NewAccountsAPI(rest *RestClient) *AccountsAPI {
	return &AccountsAPI{rest: rest}
}

// GetAccount gets the core account data (sequence number and authentication key) of the given address.
func (a *AccountsAPI) GetAccount(address string) (*jsonmodels.AccountData, error) {
	res := &jsonmodels.AccountData{}
	if err := a.rest.do(http.MethodGet, fmt.Sprintf("%s/%s", routeAccounts, address), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetAccountResources gets all resources stored under the given address.
func (a *AccountsAPI) GetAccountResources(address string) ([]jsonmodels.AccountResource, error) {
	var res []jsonmodels.AccountResource
	if err := a.rest.do(http.MethodGet, fmt.Sprintf("%s/%s/resources", routeAccounts, address), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetAccountResource gets the resource of the given type stored under the given address.
func (a *AccountsAPI) GetAccountResource(address string, resourceType string) (*jsonmodels.AccountResource, error) {
	res := &jsonmodels.AccountResource{}
	if err := a.rest.do(http.MethodGet, fmt.Sprintf("%s/%s/resource/%s", routeAccounts, address, resourceType), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetAccountModules gets all modules published under the given address.
func (a *AccountsAPI) GetAccountModules(address string) ([]jsonmodels.MoveModule, error) {
	var res []jsonmodels.MoveModule
	if err := a.rest.do(http.MethodGet, fmt.Sprintf("%s/%s/modules", routeAccounts, address), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetAccountModule gets the module with the given name published under the given address.
func (a *AccountsAPI) GetAccountModule(address string, name string) (*jsonmodels.MoveModule, error) {
	res := &jsonmodels.MoveModule{}
	if err := a.rest.do(http.MethodGet, fmt.Sprintf("%s/%s/module/%s", routeAccounts, address, name), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
