// Package spacy provides the production nlp.Tagger backed by a spaCy sidecar.
// The statistical model cannot run in-process, so the handle built here is the
// process-wide "loaded model": constructed once at startup and shared
// read-only by every request. http.Client is safe for concurrent use
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"candiqo/internal/nlp"
	perr "candiqo/internal/platform/errors"
	"candiqo/internal/platform/logger"
)

const (
	baseURLDefault = "http://localhost:8090"
	modelDefault   = "fr_core_news_md"
	defaultTimeout = 10 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the sidecar's /ents endpoint and reports its model name
type Client struct {
	http     *http.Client
	opts     Options
	loadedAt time.Time
	log      logger.Logger
}

// New creates a Client with sane defaults and stamps the load time
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http:     &http.Client{Timeout: o.Timeout},
		opts:     o,
		loadedAt: time.Now(),
		log:      *logger.Named("spacy"),
	}
}

// Model implements nlp.Tagger
func (c *Client) Model() string { return c.opts.Model }

// LoadedAt is the unix timestamp the handle was constructed, for /health
func (c *Client) LoadedAt() int64 { return c.loadedAt.Unix() }

type entsRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// Tag implements nlp.Tagger by asking the sidecar for entity spans
func (c *Client) Tag(ctx context.Context, text string) ([]nlp.Entity, error) {
	body, err := json.Marshal(entsRequest{Text: text, Model: c.opts.Model})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "spacy encode request failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/ents", bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "spacy new request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "spacy tagger unreachable")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("spacy tagger returned %d", resp.StatusCode)
	}

	var ents []nlp.Entity
	if err := json.NewDecoder(resp.Body).Decode(&ents); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "spacy decode response failed")
	}

	c.log.Debug().
		Int("ents", len(ents)).
		Dur("elapsed", time.Since(start)).
		Msg("tagged")
	return ents, nil
}

// Ping checks the sidecar health endpoint, used by /meta/ready
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/health", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "spacy new request failed")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "spacy tagger unreachable")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return perr.Unavailablef("spacy tagger returned %d", resp.StatusCode)
	}
	return nil
}
