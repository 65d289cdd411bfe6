package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// Logger is the leveled logger consumed by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client delivers booking events to the external notification service.
// Delivery is best effort: the booking flows succeed regardless of the
// notifier, so callers go through Dispatch which only logs failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notifier client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Dispatch posts the events of one completed flow, swallowing failures.
// A disabled notifier (empty base URL) is a no-op.
func (c *Client) Dispatch(ctx context.Context, events []domain.Event) {
	if c.baseURL == "" || len(events) == 0 {
		return
	}

	if err := c.notify(ctx, events); err != nil {
		c.log.Error("Notifier unavailable, %d events dropped: %v", len(events), err)
		return
	}

	c.log.Info("Dispatched %d booking events", len(events))
}

func (c *Client) notify(ctx context.Context, events []domain.Event) error {
	payload := notifyRequest{Events: make([]eventPayload, len(events))}
	for i, e := range events {
		p := eventPayload{
			BookingID: e.BookingID,
			Kind:      string(e.Kind),
		}
		if e.OldStatus != nil {
			p.OldStatus = string(*e.OldStatus)
		}
		if e.NewStatus != nil {
			p.NewStatus = string(*e.NewStatus)
		}
		if e.UserID != nil {
			p.UserID = *e.UserID
		}
		payload.Events[i] = p
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal events: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/booking-events", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
