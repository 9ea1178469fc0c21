// Package advisory provides the HTTP-backed planning-advice client.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"zoning/config"
	"zoning/internal/domain/entity"
	"zoning/internal/domain/service"

	"go.uber.org/fx"
)

// httpAdvisor calls out to a planning-advice backend. Every failure mode,
// from a disabled config to a timeout to an unreadable body, degrades to the
// configured fallback string; no dossier operation depends on this call.
type httpAdvisor struct {
	client   *http.Client
	endpoint string
	enabled  bool
	fallback string
	logger   *slog.Logger
}

// AdvisorParams holds dependencies for the advisor, injected by Fx.
type AdvisorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// adviceRequest is the wire request for the advisory backend.
type adviceRequest struct {
	Zone     string  `json:"zone"`
	Area     float64 `json:"area"`
	Location string  `json:"location"`
}

// adviceResponse is the wire response from the advisory backend.
type adviceResponse struct {
	Advice string `json:"advice"`
}

// NewHTTPAdvisor is the constructor for httpAdvisor.
func NewHTTPAdvisor(params AdvisorParams) service.AdvisoryService {
	cfg := params.Config.Advisory

	return &httpAdvisor{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		enabled:  cfg.Enabled && cfg.Endpoint != "",
		fallback: cfg.Fallback,
		logger:   params.Logger,
	}
}

// Advise requests planning advice for the proposed project. It never
// returns an error; the fallback string stands in for any failure.
func (a *httpAdvisor) Advise(ctx context.Context, zone entity.Zone, area float64, location string) string {
	if !a.enabled {
		return a.fallback
	}

	payload, err := json.Marshal(adviceRequest{Zone: string(zone), Area: area, Location: location})
	if err != nil {
		a.logger.Warn("Failed to encode advisory request", slog.Any("error", err))

		return a.fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		a.logger.Warn("Failed to build advisory request", slog.Any("error", err))

		return a.fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("Advisory backend unreachable", slog.Any("error", err))

		return a.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("Advisory backend returned non-OK status", slog.Int("status", resp.StatusCode))

		return a.fallback
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		a.logger.Warn("Failed to read advisory response", slog.Any("error", err))

		return a.fallback
	}

	var decoded adviceResponse
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.Advice == "" {
		a.logger.Warn("Advisory backend returned an unusable body")

		return a.fallback
	}

	return decoded.Advice
}
