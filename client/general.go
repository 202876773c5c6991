package client

import (
	"fmt"
	"net/http"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

const (
	routeHealthy = "-/healthy"
)

// GeneralAPI exposes the ledger information and health endpoints of the node.
type GeneralAPI struct {
	rest *RestClient
}

// NewGeneralAPI returns a new GeneralAPI that uses the given RestClient.
func NewGeneralAPI(rest *RestClient) *GeneralAPI {
	return &GeneralAPI{rest: rest}
}

// LedgerInfo gets the current ledger information of the node.
func (g *GeneralAPI) LedgerInfo() (*jsonmodels.LedgerInfo, error) {
	res := &jsonmodels.LedgerInfo{}
	if err := g.rest.do(http.MethodGet, "", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// HealthCheck checks that the node is up and, with durationSecs set, that its ledger
// was updated within the given number of seconds.
func (g *GeneralAPI) HealthCheck(durationSecs ...uint64) error {
	route := routeHealthy
	if len(durationSecs) > 0 {
		route = fmt.Sprintf("%s?duration_secs=%d", routeHealthy, durationSecs[0])
	}
	res := &jsonmodels.HealthCheckResponse{}
	return g.rest.do(http.MethodGet, route, nil, res)
}
