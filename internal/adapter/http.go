// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/config"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/utils"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerUserID     = "x-user-id"
	headerUserSecret = "x-user-secret"

	pathUploadURL    = "/clippings/get-upload-url"
	pathHighlights   = "/clippings/highlights/list"
	pathDownloadURL  = "/clippings/highlights/download"
	pathDailyBundles = "/clippings/daily-bundle"
)

type httpNewslogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNewslogAdapter constructs the REST implementation of [NewslogAdapter].
// It normalises and validates the origin from adapterCfg.HTTPAddress and
// configures the underlying client with it and with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPNewslogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NewslogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpNewslogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// authedRequest returns a request bound to ctx that carries the identity
// headers. The caller has already checked that identity is complete.
func (h *httpNewslogAdapter) authedRequest(ctx context.Context, identity models.Identity) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(headerUserID, identity.Username).
		SetHeader(headerUserSecret, identity.APIKey)
}

// RequestUploadURL implements [NewslogAdapter].
func (h *httpNewslogAdapter) RequestUploadURL(ctx context.Context, identity models.Identity, filename string) (string, error) {
	if !identity.Complete() {
		return "", ErrMissingIdentity
	}
	if strings.TrimSpace(filename) == "" {
		return "", ErrEmptyFileName
	}

	resp, err := h.authedRequest(ctx, identity).
		SetQueryParam("fileName", filename).
		Get(pathUploadURL)
	if err != nil {
		return "", fmt.Errorf("%w: request upload url: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("request upload url: %w", err)
	}

	var payload models.UploadURLResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("%w: upload url: %w", ErrMalformedResponse, err)
	}
	if payload.UploadURL == nil || *payload.UploadURL == "" {
		return "", fmt.Errorf("%w: uploadUrl missing", ErrMalformedResponse)
	}

	h.logger.Debug().Str("file", filename).Msg("upload url issued")
	return *payload.UploadURL, nil
}

// PutContent implements [NewslogAdapter]. No identity headers are sent: the
// presigned URL carries its own authorization.
func (h *httpNewslogAdapter) PutContent(ctx context.Context, rawURL string, body []byte, contentType string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Put(rawURL)
	if err != nil {
		return fmt.Errorf("%w: put content: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("put content: %w", err)
	}

	h.logger.Debug().
		Str("url", redactURL(rawURL)).
		Int("bytes", len(body)).
		Str("content_type", contentType).
		Msg("content uploaded")
	return nil
}

// ListChangedItemKeys implements [NewslogAdapter].
func (h *httpNewslogAdapter) ListChangedItemKeys(ctx context.Context, identity models.Identity, since string) ([]string, error) {
	if !identity.Complete() {
		return nil, ErrMissingIdentity
	}

	req := h.authedRequest(ctx, identity)
	if since != "" {
		req.SetQueryParam("lastSync", since)
	}

	resp, err := req.Get(pathHighlights)
	if err != nil {
		return nil, fmt.Errorf("%w: list highlights: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}

	var payload models.HighlightsListResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: highlights list: %w", ErrMalformedResponse, err)
	}
	if payload.S3Keys == nil {
		return nil, fmt.Errorf("%w: s3Keys missing", ErrMalformedResponse)
	}

	h.logger.Debug().Str("since", since).Int("keys", len(*payload.S3Keys)).Msg("highlight keys listed")
	return *payload.S3Keys, nil
}

// RequestDownloadURL implements [NewslogAdapter].
func (h *httpNewslogAdapter) RequestDownloadURL(ctx context.Context, identity models.Identity, key string) (string, error) {
	if !identity.Complete() {
		return "", ErrMissingIdentity
	}
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}

	resp, err := h.authedRequest(ctx, identity).
		SetQueryParam("s3Key", key).
		Get(pathDownloadURL)
	if err != nil {
		return "", fmt.Errorf("%w: request download url: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("request download url for %q: %w", key, err)
	}

	var payload models.DownloadURLResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("%w: download url: %w", ErrMalformedResponse, err)
	}
	if payload.DownloadURL == nil || *payload.DownloadURL == "" {
		return "", fmt.Errorf("%w: downloadUrl missing", ErrMalformedResponse)
	}

	return *payload.DownloadURL, nil
}

// GetContent implements [NewslogAdapter]. Like PutContent it sends no
// identity headers.
func (h *httpNewslogAdapter) GetContent(ctx context.Context, rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", ErrEmptyURL
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: get content: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("get content: %w", err)
	}

	h.logger.Debug().Str("url", redactURL(rawURL)).Int("bytes", len(resp.Body())).Msg("content downloaded")
	return string(resp.Body()), nil
}

// ListDailyBundles implements [NewslogAdapter].
func (h *httpNewslogAdapter) ListDailyBundles(ctx context.Context, identity models.Identity, date string) ([]models.Bundle, error) {
	if !identity.Complete() {
		return nil, ErrMissingIdentity
	}
	date, err := models.ParseBundleDate(strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	resp, err := h.authedRequest(ctx, identity).
		SetQueryParam("date", date).
		Get(pathDailyBundles)
	if err != nil {
		return nil, fmt.Errorf("%w: list daily bundles: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list daily bundles for %s: %w", date, err)
	}

	var payload models.DailyBundleResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: daily bundles: %w", ErrMalformedResponse, err)
	}
	if payload.Bundles == nil {
		return nil, fmt.Errorf("%w: bundles missing", ErrMalformedResponse)
	}

	h.logger.Debug().Str("date", date).Int("bundles", len(*payload.Bundles)).Msg("daily bundles listed")
	return *payload.Bundles, nil
}

// redactURL strips the query string, which holds the presigned signature.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}
