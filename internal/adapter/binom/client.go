package binom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smm-fulfillment/internal/core/port"
)

const defaultTimeout = 10 * time.Second

// Client implements port.AdTrackerGateway against a Binom-style tracker
// HTTP API. Every call gets its own deadline so one slow campaign cannot
// stall a whole distribution or aggregation loop.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a tracker client. The http.Client carries no global
// timeout; deadlines come from the per-call contexts.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http: &http.Client{Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		}},
		logger: logger,
	}
}

type offerPayload struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}

type offerListResponse struct {
	Offers []offerPayload `json:"offers"`
}

type assignRequest struct {
	OfferID string `json:"offer_id"`
}

type statsResponse struct {
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
	Status      string  `json:"status"`
}

// CheckOfferExists looks an offer up by its target URL.
func (c *Client) CheckOfferExists(ctx context.Context, targetURL string) (port.OfferCheck, error) {
	var resp offerListResponse
	endpoint := "/offers?url=" + url.QueryEscape(targetURL)
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return port.OfferCheck{}, &port.GatewayError{Op: "check offer", Err: err}
	}
	if len(resp.Offers) == 0 {
		return port.OfferCheck{}, nil
	}
	return port.OfferCheck{Exists: true, OfferID: resp.Offers[0].ID}, nil
}

// CreateOffer registers a new offer and returns its id.
func (c *Client) CreateOffer(ctx context.Context, name, targetURL string) (string, error) {
	var resp offerPayload
	req := offerPayload{Name: name, URL: targetURL}
	if err := c.call(ctx, http.MethodPost, "/offers", req, &resp); err != nil {
		return "", &port.GatewayError{Op: "create offer", Err: err}
	}
	if resp.ID == "" {
		return "", &port.GatewayError{Op: "create offer", Err: fmt.Errorf("tracker returned empty offer id")}
	}
	c.logger.Info("offer created", slog.String("offer_id", resp.ID), slog.String("url", targetURL))
	return resp.ID, nil
}

// AssignOfferToCampaign binds an existing offer to a fixed campaign.
func (c *Client) AssignOfferToCampaign(ctx context.Context, offerID string, campaignID int64) error {
	endpoint := fmt.Sprintf("/campaigns/%d/offers", campaignID)
	if err := c.call(ctx, http.MethodPost, endpoint, assignRequest{OfferID: offerID}, nil); err != nil {
		return &port.GatewayError{Op: "assign offer", Err: err}
	}
	return nil
}

// GetCampaignStats returns the campaign's live delivery counters.
func (c *Client) GetCampaignStats(ctx context.Context, campaignID int64) (port.CampaignStats, error) {
	var resp statsResponse
	endpoint := fmt.Sprintf("/campaigns/%d/stats", campaignID)
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return port.CampaignStats{}, &port.GatewayError{Op: "campaign stats", Err: err}
	}
	return port.CampaignStats{
		Clicks:      resp.Clicks,
		Conversions: resp.Conversions,
		Cost:        resp.Cost,
		Revenue:     resp.Revenue,
		Status:      resp.Status,
	}, nil
}

// call performs one JSON request against the tracker with a per-call
// deadline. A non-2xx response is an error; out decodes the body when
// non-nil.
func (c *Client) call(ctx context.Context, method, endpoint string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
