package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/example/secureshop/internal/email"
)

// Tier names, as reported by Dispatcher.Send.
const (
	TierRemote     = "remote"
	TierProvider   = "provider"
	TierSimulation = "simulation"
)

// RemoteTier posts the raw order to a configured notification endpoint,
// which formats and sends the email itself.
type RemoteTier struct {
	endpoint string
	client   *http.Client
}

func NewRemoteTier(endpoint string) *RemoteTier {
	return &RemoteTier{
		endpoint: endpoint,
		// The original storefront waited on the transport default; a bounded
		// timeout keeps a hung endpoint from stalling the whole chain.
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *RemoteTier) Name() string { return TierRemote }

func (t *RemoteTier) Attempt(ctx context.Context, order Order, _ email.Payload) error {
	if t.endpoint == "" {
		return errors.New("no email endpoint configured")
	}

	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email endpoint responded %d", resp.StatusCode)
	}

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode endpoint response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("email endpoint reported failure: %s", result.Message)
	}
	return nil
}

// ProviderTier sends directly through the provider API. It only applies when
// an API key is configured, which makes it a server-side capability.
type ProviderTier struct {
	sender *email.Service
}

func NewProviderTier(sender *email.Service) *ProviderTier {
	return &ProviderTier{sender: sender}
}

func (t *ProviderTier) Name() string { return TierProvider }

func (t *ProviderTier) Attempt(ctx context.Context, _ Order, payload email.Payload) error {
	return t.sender.Send(ctx, payload)
}

// SimulationTier logs the rendered notification instead of transmitting it.
// It always succeeds, guaranteeing checkout forward progress.
type SimulationTier struct{}

func (SimulationTier) Name() string { return TierSimulation }

func (SimulationTier) Attempt(_ context.Context, _ Order, payload email.Payload) error {
	email.Simulate(payload)
	return nil
}
