// Package freedict fetches raw lexical entries from the FreeDictionary API
// (dictionaryapi.dev). It returns the upstream payload decoded but otherwise
// untouched; normalization happens in the dictionary service.
package freedict

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mydictionary/backend/internal/config"
	"github.com/mydictionary/backend/internal/domain"
	"github.com/mydictionary/backend/internal/provider"
)

// Client fetches dictionary data from the FreeDictionary API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from DictionaryConfig. The request timeout is
// taken from the config (30s by default); certificate verification is only
// relaxed when cfg.InsecureSkipVerify is set.
func NewClient(cfg config.DictionaryConfig, logger *slog.Logger) *Client {
	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		log: logger.With("adapter", "freedict"),
	}
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "freedict"),
	}
}

// notFoundPayload is the object shape the API returns when a word is unknown,
// e.g. {"title":"No Definitions Found","message":...,"resolution":...}.
type notFoundPayload struct {
	Title string `json:"title"`
}

// FetchEntries fetches all raw lexical entries for the given word.
// Returns domain.ErrNotFound when the upstream reports the word as unknown;
// any transport or decode failure is wrapped as a domain.UpstreamError.
func (c *Client) FetchEntries(ctx context.Context, word string) ([]provider.LexicalEntry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	c.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "freedict request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, domain.NewUpstreamError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("read body: %w", err))
	}

	// The not-found response is an object with a "title" field rather than
	// an entry array, regardless of status code.
	if isNotFoundBody(body) {
		c.log.DebugContext(ctx, "freedict no definitions", slog.String("word", word))
		return nil, fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var entries []provider.LexicalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("decode json: %w", err))
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
	}

	c.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

func isNotFoundBody(body []byte) bool {
	var nf notFoundPayload
	if err := json.Unmarshal(body, &nf); err != nil {
		return false
	}
	return nf.Title != ""
}
