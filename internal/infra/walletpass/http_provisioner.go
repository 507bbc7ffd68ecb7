// Package walletpass talks to the external pass-building collaborator over HTTP.
package walletpass

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tally/config"
	"tally/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultProvisionTimeout = 10 * time.Second

// httpProvisioner implements WalletPassProvisioner against the collaborator's
// REST endpoint. Pass-format details live entirely on the remote side.
type httpProvisioner struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the provisioner, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHTTPProvisioner creates a provisioner from configuration.
func NewHTTPProvisioner(params Params) (service.WalletPassProvisioner, error) {
	cfg := params.Config.WalletPass
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("wallet pass endpoint is not configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProvisionTimeout
	}

	return &httpProvisioner{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// ProvisionPass creates or refreshes the pass for a membership and returns the install URLs.
func (p *httpProvisioner) ProvisionPass(ctx context.Context, req *service.WalletPassRequest) (*service.WalletPassURLs, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "wallet pass provisioner unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for diagnostics without trusting its size.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.logger.Warn("wallet pass provisioner returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, errors.Errorf("wallet pass provisioner returned status %d", resp.StatusCode)
	}

	var urls service.WalletPassURLs
	if err := json.NewDecoder(resp.Body).Decode(&urls); err != nil {
		return nil, errors.Wrap(err, "failed to decode wallet pass response")
	}

	return &urls, nil
}
