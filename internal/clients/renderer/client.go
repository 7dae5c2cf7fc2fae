// Package renderer is the client for the HTML-to-PDF rendering service
package renderer

//go:generate mockgen -destination=mock/mock_client.go -package=renderermock github.com/KirkDiggler/armybook-api/internal/clients/renderer Client

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/retry"
)

const (
	DefaultEndpoint         = "https://api.html2pdf.app/v1/generate"
	DefaultPrintURLTemplate = "https://webapp.onepagerules.com/army-books/view/%s/print"
	DefaultServiceName      = "html2pdf.app"

	maxPdfSize = 64 << 20
)

// Client renders the print view of an army book flavor to PDF
type Client interface {
	Render(ctx context.Context, flavouredUID string) ([]byte, error)

	// Service names the rendering backend recorded on cached artifacts
	Service() string
}

// Config contains configuration options for the renderer client
type Config struct {
	Endpoint string
	APIKey   string
	// PrintURLTemplate receives the flavoured uid through a single %s
	PrintURLTemplate string
	ServiceName      string
	HTTPTimeout      time.Duration
	Retry            retry.Policy
	HTTPClient       *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.PrintURLTemplate == "" {
		cfg.PrintURLTemplate = DefaultPrintURLTemplate
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.Retry == (retry.Policy{}) {
		cfg.Retry = retry.DefaultPolicy()
	}

	vb := errors.NewValidationBuilder()
	if strings.Count(cfg.PrintURLTemplate, "%s") != 1 {
		vb.InvalidField("PrintURLTemplate", "must contain exactly one %s")
	}
	if _, err := url.Parse(cfg.Endpoint); err != nil {
		vb.InvalidField("Endpoint", err.Error())
	}
	if err := cfg.Retry.Validate(); err != nil {
		vb.InvalidField("Retry", err.Error())
	}
	return vb.Build()
}

type client struct {
	endpoint    string
	apiKey      string
	printURL    string
	serviceName string
	policy      retry.Policy
	httpClient  *http.Client
}

// New creates a renderer client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		printURL:    cfg.PrintURLTemplate,
		serviceName: cfg.ServiceName,
		policy:      cfg.Retry,
		httpClient:  httpClient,
	}, nil
}

func (c *client) Service() string {
	return c.serviceName
}

// statusError marks a non-200 response; only 5xx is retried
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("renderer returned %d", e.status)
}

func retryable(err error) bool {
	var se *statusError
	if stderrors.As(err, &se) {
		return se.status >= http.StatusInternalServerError
	}
	return true
}

// timedOut covers both the caller's deadline and the http client timeout
func timedOut(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(err, &ne) && ne.Timeout()
}

func (c *client) Render(ctx context.Context, flavouredUID string) ([]byte, error) {
	if flavouredUID == "" {
		return nil, errors.InvalidArgument("flavoured uid is required")
	}

	q := url.Values{}
	q.Set("url", fmt.Sprintf(c.printURL, flavouredUID))
	q.Set("apiKey", c.apiKey)
	q.Set("media", "print")
	target := c.endpoint + "?" + q.Encode()

	var body []byte
	attempt := 0
	err := c.policy.Do(ctx, retryable, func(ctx context.Context) error {
		attempt++
		var err error
		body, err = c.fetch(ctx, target)
		if err != nil {
			slog.WarnContext(ctx, "pdf render attempt failed",
				"flavoured_uid", flavouredUID,
				"attempt", attempt,
				"error", err)
		}
		return err
	})
	if err != nil {
		if timedOut(err) {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "pdf render timed out")
		}
		return nil, errors.WrapUpstream(err, "failed to render pdf")
	}
	if len(body) == 0 {
		return nil, errors.Upstream("renderer returned an empty document")
	}

	return body, nil
}

func (c *client) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore on read path
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{status: resp.StatusCode}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxPdfSize))
}
