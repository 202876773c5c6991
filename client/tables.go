package client

import (
	"fmt"
	"net/http"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

const (
	routeTables = "tables"
)

// TablesAPI exposes the table item lookup endpoints of the node.
type TablesAPI struct {
	rest *RestClient
}

// NewTablesAPI returns a new TablesAPI that uses the given RestClient.
func NewTablesAPI(rest *RestClient) *TablesAPI {
	return &TablesAPI{rest: rest}
}

// GetTableItem looks up an item in the table with the given handle. The item is decoded
// into decodeTo, whose shape must match the requested value type.
func (t *TablesAPI) GetTableItem(handle string, req *jsonmodels.TableItemRequest, decodeTo interface{}) error {
	return t.rest.do(http.MethodPost, fmt.Sprintf("%s/%s/item", routeTables, handle), req, decodeTo)
}
