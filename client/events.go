package client

import (
	"fmt"
	"net/http"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

const (
	routeEvents = "events"
)

// EventsAPI exposes the event query endpoints of the node.
type EventsAPI struct {
	rest *RestClient
}

// NewEventsAPI returns a new EventsAPI that uses the given RestClient.
func NewEventsAPI(rest *RestClient) *EventsAPI {
	return &EventsAPI{rest: rest}
}

// GetEventsByEventKey gets the events identified by the given globally unique event key.
func (e *EventsAPI) GetEventsByEventKey(eventKey string) ([]jsonmodels.Event, error) {
	var res []jsonmodels.Event
	if err := e.rest.do(http.MethodGet, fmt.Sprintf("%s/%s", routeEvents, eventKey), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetEventsByEventHandle gets the events emitted through the given event handle field of an
// account, starting at the given sequence number. The events are returned in sequence order.
func (e *EventsAPI) GetEventsByEventHandle(address string, handle string, field string, start uint64, limit uint64) ([]jsonmodels.Event, error) {
	var res []jsonmodels.Event
	route := fmt.Sprintf("%s/%s/events/%s/%s?start=%d&limit=%d", routeAccounts, address, handle, field, start, limit)
	if err := e.rest.do(http.MethodGet, route, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
