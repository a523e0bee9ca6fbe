package controllers

import (
	"fmt"
	"net/http"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// EventsController streams the payload-less change signals to UI
// subscribers over server-sent events. Clients re-fetch full state on
// every event; no payload is ever attached.
type EventsController struct {
	broadcaster *events.Broadcaster
}

func NewEventsController(b *events.Broadcaster) *EventsController {
	return &EventsController{broadcaster: b}
}

// -----------------------------------------------------------------------------
// GET /api/v1/events
// -----------------------------------------------------------------------------
func (c *EventsController) StreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Streaming unsupported", nil,
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	signals := make(chan events.Topic, 8)
	forward := func(topic events.Topic) func() {
		return func() {
			select {
			case signals <- topic:
			default:
				// slow client; the next signal triggers the same full re-read
			}
		}
	}
	unsubCustomers := c.broadcaster.Subscribe(events.CustomersUpdated, forward(events.CustomersUpdated))
	unsubNotifications := c.broadcaster.Subscribe(events.NotificationsUpdated, forward(events.NotificationsUpdated))
	defer unsubCustomers()
	defer unsubNotifications()

	for {
		select {
		case <-r.Context().Done():
			return
		case topic := <-signals:
			fmt.Fprintf(w, "event: %s\ndata: {}\n\n", topic)
			flusher.Flush()
		}
	}
}
