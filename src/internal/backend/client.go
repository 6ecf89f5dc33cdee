// Package backend wraps the SPRIDE REST API. Every wrapper performs a single
// request with the shared cookie jar, logs failures and hands back a usable
// fallback value together with an *apiErrors.APIError describing what went
// wrong.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/spride/spride-web/src/internal/backend/apiErrors"
	"github.com/spride/spride-web/src/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

const maxErrorBody = 4 << 10

type Client struct {
	base    *url.URL
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		base:    base,
		http:    &http.Client{Timeout: timeout, Jar: jar},
		log:     logger,
		metrics: m,
	}, nil
}

// Cookies exposes the session cookies held for the backend origin.
func (c *Client) Cookies() []*http.Cookie {
	return c.http.Jar.Cookies(c.base)
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonBody(v any) (io.Reader, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, &apiErrors.APIError{Code: apiErrors.Validation, Message: "encode request", Err: err}
	}
	return bytes.NewReader(buf), nil
}

// do sends req and decodes a 2xx JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	start := time.Now()
	err := c.send(ctx, req, out)
	outcome := "ok"
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		outcome = strings.ToLower(string(apiErr.Code))
	}
	c.metrics.ObserveCall(req.op, outcome, time.Since(start))
	return err
}

func (c *Client) send(ctx context.Context, req request, out any) error {
	u := *c.base
	u.Path = c.base.Path + req.path
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), req.body)
	if err != nil {
		return &apiErrors.APIError{Code: apiErrors.Validation, Message: "build request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	c.log.Debug("backend call", zap.String("op", req.op), zap.String("method", req.method), zap.String("path", u.Path))
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn("backend call: network error", zap.String("op", req.op), zap.Error(err))
		return &apiErrors.APIError{Code: apiErrors.Network, Message: "network error", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Info("backend call: close body failed", zap.String("op", req.op), zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Error("backend call: bad status",
			zap.String("op", req.op), zap.Int("status", resp.StatusCode), zap.String("body", msg))
		return &apiErrors.APIError{Code: apiErrors.HTTPStatus, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("backend call: read body failed", zap.String("op", req.op), zap.Error(err))
		return &apiErrors.APIError{Code: apiErrors.Network, Message: "read body", Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error("backend call: decode failed", zap.String("op", req.op), zap.Error(err))
		return &apiErrors.APIError{Code: apiErrors.Decode, Message: "unexpected response body", Err: err}
	}
	return nil
}
