// Package lostark is the client for the Lost Ark developer API roster lookup
package lostark

//go:generate mockgen -destination=mock/mock_client.go -package=lostarkmock github.com/KirkDiggler/raid-gold-api/internal/clients/lostark Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
)

const (
	// DefaultBaseURL is the public developer API
	DefaultBaseURL = "https://developer-lostark.game.onstove.com"

	defaultHTTPTimeout = 10 * time.Second

	// Bodies above this size are not a roster
	maxResponseBytes = 1 << 20
)

// Client defines the roster lookup operations
type Client interface {
	// GetSiblings returns every character on the account that owns the named character.
	// An unknown name yields an empty list, not an error.
	GetSiblings(ctx context.Context, characterName string) ([]*entities.CharacterSummary, error)
}

// Config contains configuration options for the roster client
type Config struct {
	// APIKey is the developer API JWT (required)
	APIKey string
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		vb.Fieldf("BaseURL", "is not a valid URL: %v", err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	return vb.Build()
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new roster client with the given configuration
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid lostark client config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) GetSiblings(ctx context.Context, characterName string) ([]*entities.CharacterSummary, error) {
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	endpoint := c.baseURL + "/characters/" + url.PathEscape(characterName) + "/siblings"

	var siblings []*Sibling
	if err := c.get(ctx, endpoint, &siblings); err != nil {
		return nil, errors.Wrapf(err, "failed to get siblings of %s", characterName)
	}

	summaries := make([]*entities.CharacterSummary, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling == nil {
			continue
		}
		summary, err := toCharacterSummary(sibling)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// get performs a GET request and decodes the JSON response
func (c *client) get(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response")
	}

	slog.Debug("lostark request",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return parseError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "unexpected response shape")
	}

	return nil
}

// parseError maps an API failure to a coded error
func parseError(statusCode int, body []byte) error {
	message := strings.TrimSpace(string(body))

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	if message == "" {
		switch statusCode {
		case http.StatusUnauthorized:
			message = "api key rejected"
		case http.StatusTooManyRequests:
			message = "rate limit exceeded"
		case http.StatusServiceUnavailable:
			message = "api under maintenance"
		default:
			message = http.StatusText(statusCode)
		}
	}

	return errors.Newf(errors.CodeFromHTTPStatus(statusCode), "lostark api: %s", message).
		WithMeta("http_status", statusCode)
}

func toCharacterSummary(sibling *Sibling) (*entities.CharacterSummary, error) {
	itemLevel, err := ParseItemLevel(sibling.ItemMaxLevel)
	if err != nil {
		return nil, errors.Unavailablef("malformed item level %q for %s", sibling.ItemMaxLevel, sibling.CharacterName)
	}

	return &entities.CharacterSummary{
		Name:      sibling.CharacterName,
		ClassName: sibling.CharacterClassName,
		ItemLevel: itemLevel,
	}, nil
}

// ParseItemLevel parses a comma grouped item level such as "1,620.83"
func ParseItemLevel(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 64)
}
