package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/utils"
	"github.com/sammirack/admin-sync/models"
)

type httpRemoteClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteClient constructs an HTTP/REST implementation of
// [RemoteClient]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteClient{client: client, logger: logger}, nil
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

// PullInventory implements [RemoteClient]. It GETs /api/inventory and
// decodes the full partID→quantity map. Returns an error if the request,
// response mapping, or JSON decoding fails.
func (h *httpRemoteClient) PullInventory(ctx context.Context) (models.Inventory, error) {
	resp, err := h.jsonRequest(ctx).Get("/api/inventory")
	if err != nil {
		return nil, fmt.Errorf("pull inventory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var inv models.Inventory
	if err = json.Unmarshal(resp.Body(), &inv); err != nil {
		return nil, fmt.Errorf("decode inventory response: %w", err)
	}

	return inv, nil
}

// PullPrices implements [RemoteClient]. It GETs /api/prices and decodes the
// full admin price map.
func (h *httpRemoteClient) PullPrices(ctx context.Context) (models.PriceMap, error) {
	resp, err := h.jsonRequest(ctx).Get("/api/prices")
	if err != nil {
		return nil, fmt.Errorf("pull prices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var prices models.PriceMap
	if err = json.Unmarshal(resp.Body(), &prices); err != nil {
		return nil, fmt.Errorf("decode prices response: %w", err)
	}

	return prices, nil
}

// PullPriceHistory implements [RemoteClient]. It GETs /api/history and
// returns the body verbatim; the history blob is opaque to the engine.
func (h *httpRemoteClient) PullPriceHistory(ctx context.Context) (models.PriceHistory, error) {
	resp, err := h.jsonRequest(ctx).Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("pull price history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.PriceHistory(resp.Body()), nil
}

// PullDocuments implements [RemoteClient]. It GETs /api/documents and
// decodes the full document dataset, tombstones included.
func (h *httpRemoteClient) PullDocuments(ctx context.Context) (models.DocumentMap, error) {
	resp, err := h.jsonRequest(ctx).Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("pull documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs models.DocumentMap
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}

	return docs, nil
}

// PullActivity implements [RemoteClient]. It GETs /api/activity/recent with
// the given limit and decodes the newest-first entry list.
func (h *httpRemoteClient) PullActivity(ctx context.Context, limit int) (models.ActivityLog, error) {
	resp, err := h.jsonRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/activity/recent")
	if err != nil {
		return nil, fmt.Errorf("pull activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var log models.ActivityLog
	if err = json.Unmarshal(resp.Body(), &log); err != nil {
		return nil, fmt.Errorf("decode activity response: %w", err)
	}

	return log, nil
}

// PushInventory implements [RemoteClient]. It POSTs the full inventory map
// to /api/inventory/update.
func (h *httpRemoteClient) PushInventory(ctx context.Context, inv models.Inventory) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(inv).
		Post("/api/inventory/update")
	if err != nil {
		return fmt.Errorf("push inventory request: %w", err)
	}

	return mapHTTPError(resp)
}

type priceUpdateRequest struct {
	PartID string `json:"partId"`
	models.PriceEntry
}

// PushPriceEntry implements [RemoteClient]. It POSTs a single price
// override to /api/prices/update, one entry per call.
func (h *httpRemoteClient) PushPriceEntry(ctx context.Context, partID string, entry models.PriceEntry) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(priceUpdateRequest{PartID: partID, PriceEntry: entry}).
		Post("/api/prices/update")
	if err != nil {
		return fmt.Errorf("push price entry request: %w", err)
	}

	return mapHTTPError(resp)
}

// PushPriceHistory implements [RemoteClient]. It POSTs the opaque history
// blob to /api/history/update.
func (h *httpRemoteClient) PushPriceHistory(ctx context.Context, history models.PriceHistory) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(json.RawMessage(history)).
		Post("/api/history/update")
	if err != nil {
		return fmt.Errorf("push price history request: %w", err)
	}

	return mapHTTPError(resp)
}

type saveDocumentRequest struct {
	DocID string `json:"docId"`
	models.Document
}

// PushDocument implements [RemoteClient]. It POSTs one document to
// /api/documents/save. Tombstones are pushed through here unchanged; the
// remote store performs no merge of its own.
func (h *httpRemoteClient) PushDocument(ctx context.Context, key string, doc models.Document) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(saveDocumentRequest{DocID: key, Document: doc}).
		Post("/api/documents/save")
	if err != nil {
		return fmt.Errorf("push document request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteDocument implements [RemoteClient]. It sends DELETE
// /api/documents/{key}. Used only by the permanent-erase path; soft deletes
// are saves with the Deleted flag set.
func (h *httpRemoteClient) DeleteDocument(ctx context.Context, key string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/documents/" + url.PathEscape(key))
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

// AppendActivity implements [RemoteClient]. It POSTs one log entry to
// /api/activity/log.
func (h *httpRemoteClient) AppendActivity(ctx context.Context, entry models.ActivityEntry) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(entry).
		Post("/api/activity/log")
	if err != nil {
		return fmt.Errorf("append activity request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteClient) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}
