package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crossborder-orchestrator/internal/core/domain"
)

// Subscribe polls the gateway's event feed and delivers each emitted
// contract event to handler, in order. It returns when ctx is cancelled.
// Poll errors are logged and retried on the next interval; they never
// end the subscription.
func (c *Client) Subscribe(ctx context.Context, handler func(domain.LedgerEvent)) error {
	ticker := time.NewTicker(c.cfg.EventPollInterval)
	defer ticker.Stop()

	var cursor uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		events, err := c.fetchEvents(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warn().Err(err).Uint64("cursor", cursor).Msg("event poll failed")
			continue
		}
		for _, ev := range events {
			if ev.Cursor >= cursor {
				cursor = ev.Cursor + 1
			}
			handler(ev)
		}
	}
}

func (c *Client) fetchEvents(ctx context.Context, cursor uint64) ([]domain.LedgerEvent, error) {
	url := fmt.Sprintf("%s/events?cursor=%d", c.cfg.GatewayURL, cursor)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, readGatewayError(resp)
	}
	var body struct {
		Events []domain.LedgerEvent `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Events, nil
}
