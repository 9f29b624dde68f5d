// Package gudid is a client for the AccessGUDID public device registry.
// Registry unavailability is a recoverable condition for callers, so every
// transport or status failure comes back as apperrors.ErrLookupFailed.
package gudid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/imedlab/inventory-manager/internal/core/ports/clients"
)

// DefaultBaseURL is the public AccessGUDID API root.
const DefaultBaseURL = "https://accessgudid.nlm.nih.gov/api/v3"

// Client queries the registry's device lookup endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ clients.RegistryClient = (*Client)(nil)

// NewClient creates a registry client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RecordURL returns the canonical lookup URL for a device identifier. New
// items store this as their external reference.
func (c *Client) RecordURL(identifier string) string {
	return c.baseURL + "/devices/lookup.json?udi=" + url.QueryEscape(identifier)
}

// LookupDevice fetches and extracts the canonical device fields for a UDI.
// An empty identifier short-circuits without a network call.
func (c *Client) LookupDevice(ctx context.Context, identifier string) (*domain.DeviceRecord, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("%w: empty device identifier", apperrors.ErrLookupFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RecordURL(identifier), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: registry returned status %d", apperrors.ErrLookupFailed, resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrLookupFailed, err)
	}

	return extract(&payload)
}

// extract selects the canonical subset of the response. Registries may
// return multiple product-code classifications; the first is treated as
// canonical, and likewise for device identifiers.
func extract(payload *lookupResponse) (*domain.DeviceRecord, error) {
	if len(payload.ProductCodes) == 0 {
		return nil, fmt.Errorf("%w: no product code entries", apperrors.ErrIncompleteRecord)
	}
	if payload.GUDID == nil || payload.GUDID.Device == nil {
		return nil, fmt.Errorf("%w: no device record", apperrors.ErrIncompleteRecord)
	}
	device := payload.GUDID.Device
	if len(device.Identifiers.Identifier) == 0 {
		return nil, fmt.Errorf("%w: no device identifiers", apperrors.ErrIncompleteRecord)
	}

	return &domain.DeviceRecord{
		DeviceName:  payload.ProductCodes[0].DeviceName,
		DeviceID:    device.Identifiers.Identifier[0].DeviceID,
		CompanyName: device.CompanyName,
		ModelNumber: device.VersionModelNumber,
		Description: device.DeviceDescription,
	}, nil
}
