package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/keylock/internal/config"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/utils"
	"github.com/MKhiriev/keylock/models"
)

const (
	sharePath  = "/api/share"
	secretPath = "/api/secret/{reference}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSecret implements [ServerAdapter]. It POSTs req as JSON to
// POST /api/share. Returns a [*StatusError] for non-2xx answers and
// [ErrMalformedResponse] when the body carries no usable url.
func (h *httpServerAdapter) CreateSecret(ctx context.Context, req models.ShareRequest) (models.ShareResponse, error) {
	log := h.logger.With().Str("func", "httpServerAdapter.CreateSecret").Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(sharePath)
	if err != nil {
		err = redactRequestError(err)
		log.Err(err).Msg("create secret request failed")
		return models.ShareResponse{}, fmt.Errorf("%w: create secret request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Msg("create secret rejected")
		return models.ShareResponse{}, err
	}

	created, err := decodeShareResponse(resp.Body())
	if err != nil {
		log.Err(err).Msg("create secret response is unusable")
		return models.ShareResponse{}, err
	}

	log.Debug().
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Str("id", created.ID).
		Msg("secret created")
	return created, nil
}

// FetchSecret implements [ServerAdapter]. It GETs
// GET /api/secret/{reference} and extracts the content with extractContent.
// Returns a [*StatusError] for non-2xx answers; the body of such answers is
// never inspected for content.
func (h *httpServerAdapter) FetchSecret(ctx context.Context, reference string) (models.RedeemedSecret, error) {
	log := h.logger.With().Str("func", "httpServerAdapter.FetchSecret").Logger()
	log.Debug().Str("reference", reference).Msg("fetching secret")

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("reference", reference).
		Get(secretPath)
	if err != nil {
		err = redactRequestError(err)
		log.Err(err).Msg("fetch secret request failed")
		return models.RedeemedSecret{}, fmt.Errorf("%w: fetch secret request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Msg("fetch secret rejected")
		return models.RedeemedSecret{}, err
	}

	content, remaining, err := extractContent(resp.Body())
	if err != nil {
		log.Err(err).Msg("fetch secret response is unusable")
		return models.RedeemedSecret{}, err
	}

	log.Debug().Int("content_len", len(content)).Msg("secret fetched")
	return models.RedeemedSecret{
		Reference:      reference,
		Content:        content,
		RemainingViews: remaining,
	}, nil
}
