package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tipcast.app/frames/core/config"
	"tipcast.app/frames/internal/model"
)

// ErrUnverified means the hub could not attest that an interaction message
// was really produced by the claimed actor.
var ErrUnverified = errors.New("message failed hub verification")

// Verifier checks the authenticity of an interaction message against the
// issuing protocol's hub. The frame validator itself is shape-only; this is
// the trust boundary.
type Verifier interface {
	Verify(ctx context.Context, msg *model.InteractionMessage) error
}

type noopVerifier struct{}

// NewNoopVerifier trusts messages as delivered by the transport. Used when
// no hub endpoint is configured.
func NewNoopVerifier() Verifier {
	return noopVerifier{}
}

func (noopVerifier) Verify(context.Context, *model.InteractionMessage) error {
	return nil
}

type hubVerifier struct {
	url    string
	client *http.Client
}

// NewHubVerifier verifies message hashes against an external hub endpoint.
func NewHubVerifier(cfg config.HubConfig) Verifier {
	return &hubVerifier{
		url:    cfg.VerifyURL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (v *hubVerifier) Verify(ctx context.Context, msg *model.InteractionMessage) error {
	body, err := json.Marshal(map[string]any{
		"messageHash": msg.MessageHash,
		"actorId":     msg.ActorID,
	})
	if err != nil {
		return fmt.Errorf("encoding verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling hub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: hub returned %d", ErrUnverified, resp.StatusCode)
	}
	return nil
}
