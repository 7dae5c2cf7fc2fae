// Package calculator is the client for the point-cost service
package calculator

//go:generate mockgen -destination=mock/mock_client.go -package=calculatormock github.com/KirkDiggler/armybook-api/internal/clients/calculator Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

const (
	unitCostPath           = "/v1/unit-cost"
	recalculatePackagePath = "/v1/upgrade-packages/recalculate"

	maxErrorBody = 512
)

// Client prices units and upgrade packages
type Client interface {
	// UnitCost returns the unrounded point cost of a unit
	UnitCost(ctx context.Context, unit *NormalizedUnit, customRules CustomRules) (float64, error)

	// RecalculatePackage returns positional replacements for the package's options
	RecalculatePackage(ctx context.Context, input *RecalculatePackageInput) ([]OptionUpdate, error)
}

// Config contains configuration options for the HTTP client
type Config struct {
	// BaseURL of the point-cost service (required)
	BaseURL string
	// HTTPTimeout for a single request (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a point-cost client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

type unitCostRequest struct {
	Unit        *NormalizedUnit `json:"unit"`
	CustomRules CustomRules     `json:"customRules"`
}

type unitCostResponse struct {
	Cost *float64 `json:"cost"`
}

type recalculatePackageResponse struct {
	Updates []optionUpdateWire `json:"updates"`
}

// optionUpdateWire reads the option cost unrounded; the service may answer
// with fractional points
type optionUpdateWire struct {
	SectionIndex int `json:"sectionIndex"`
	OptionIndex  int `json:"optionIndex"`
	Option       *struct {
		entities.Option
		Cost float64 `json:"cost"`
	} `json:"option"`
}

func (c *client) UnitCost(ctx context.Context, unit *NormalizedUnit, customRules CustomRules) (float64, error) {
	if unit == nil {
		return 0, errors.InvalidArgument("unit is required")
	}
	if customRules == nil {
		customRules = CustomRules{}
	}

	var resp unitCostResponse
	if err := c.post(ctx, unitCostPath, &unitCostRequest{Unit: unit, CustomRules: customRules}, &resp); err != nil {
		return 0, errors.Wrapf(err, "failed to price unit %s", unit.ID)
	}
	if resp.Cost == nil {
		return 0, errors.Upstreamf("point-cost service returned no cost for unit %s", unit.ID)
	}

	return *resp.Cost, nil
}

func (c *client) RecalculatePackage(ctx context.Context, input *RecalculatePackageInput) ([]OptionUpdate, error) {
	if input == nil || input.Package == nil {
		return nil, errors.InvalidArgument("upgrade package is required")
	}
	if input.CustomRules == nil {
		input.CustomRules = CustomRules{}
	}

	var resp recalculatePackageResponse
	if err := c.post(ctx, recalculatePackagePath, input, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to recalculate upgrade package %s", input.Package.UID)
	}

	updates := make([]OptionUpdate, 0, len(resp.Updates))
	for _, u := range resp.Updates {
		update := OptionUpdate{SectionIndex: u.SectionIndex, OptionIndex: u.OptionIndex}
		if u.Option != nil {
			option := u.Option.Option
			option.Cost = Round(u.Option.Cost)
			update.Option = &option
		}
		updates = append(updates, update)
	}
	return updates, nil
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapUpstream(err, "point-cost service unreachable")
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore on read path
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.WarnContext(ctx, "point-cost service rejected request",
			"path", path,
			"status", resp.StatusCode,
			"body", string(snippet))
		return errors.Upstreamf("point-cost service returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapUpstream(err, fmt.Sprintf("invalid response from %s", path))
	}

	return nil
}
