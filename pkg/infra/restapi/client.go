// Package restapi is the HTTP client of the version control server REST API.
package restapi

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

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct {
	baseURL    string
	apiKey     types.APIKey
	httpClient infra.HTTPClient
}

var _ interfaces.ControlPlane = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL string, apiKey types.APIKey, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "REST API URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid REST API URL", goerr.V("url", baseURL), goerr.V("cause", err.Error()))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "REST API URL must be http or https", goerr.V("url", baseURL))
	}
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "API key is empty")
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// endpoint fills path parameters, escaping each of them.
func endpoint(format string, args ...string) string {
	escaped := make([]any, len(args))
	for i, arg := range args {
		escaped[i] = url.PathEscape(arg)
	}
	return fmt.Sprintf(format, escaped...)
}

type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any
	// action completes "Unable to ..." in error reports
	action string
}

// call sends the request and decodes a JSON response into out when out is not nil.
func (x *Client) call(ctx context.Context, req apiRequest, out any) error {
	target := x.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("action", req.action))
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("action", req.action), goerr.V("endpoint", target))
	}
	httpReq.Header.Set("Authorization", "ApiKey "+x.apiKey.Reveal())
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	logging.From(ctx).Debug("Sending REST API request",
		slog.String("method", req.method),
		slog.String("endpoint", target),
		slog.String("action", req.action),
	)

	resp, err := x.httpClient.Do(httpReq)
	if err != nil {
		return goerr.Wrap(types.ErrControlPlane, "unable to "+req.action,
			goerr.V("endpoint", target),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(types.ErrControlPlane, "unable to read response of "+req.action,
			goerr.V("endpoint", target),
			goerr.V("status", resp.StatusCode),
			goerr.V("cause", err.Error()),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.Wrap(types.ErrControlPlane, "unable to "+req.action,
			goerr.V("endpoint", target),
			goerr.V("status", resp.StatusCode),
			goerr.V("message", errorMessage(respBody)),
			goerr.V("hint", StatusHint(resp.StatusCode)),
		)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.V("action", req.action),
			goerr.V("endpoint", target),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}

// errorMessage extracts error.message of an error response, falling back to the raw body.
func errorMessage(body []byte) string {
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Message != "" {
		return resp.Error.Message
	}
	return strings.TrimSpace(string(body))
}

// StatusHint explains what an operator should check for a failed request.
func StatusHint(statusCode int) string {
	switch statusCode {
	case http.StatusUnauthorized:
		return "Please check that the User API Key assigned to the bot is correct and the associated user has enough permissions."
	case http.StatusInternalServerError:
		return "Please check the server log."
	case http.StatusNotFound:
		return "The requested element doesn't exist."
	case http.StatusBadRequest:
		return "The server couldn't understand the request data."
	default:
		return ""
	}
}
