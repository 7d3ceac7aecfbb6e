/*
Copyright 2026 the rest-project Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// tracestateKey is this harness's vendor key in the W3C trace state.
const tracestateKey = "rest-project"

//go:generate mockgen -source=api_client.go -destination=mock/doer.go -package=mock

// HTTPDoer executes a single HTTP request, *http.Client implements it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a fully read HTTP response, kept for status and body
// assertions that don't go through a typed model.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
	Duration   time.Duration
}

// Decode unmarshals the body into the model pointed to by v, see Decode.
func (r *Response) Decode(v any) error {
	return Decode(r.Body, v)
}

type APIClient struct {
	client    HTTPDoer
	spec      RequestSpecification
	endpoints *Endpoints
	validator *ContractValidator
	logger    logr.Logger
	runID     string
}

// Option customizes an APIClient.
type Option func(*APIClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *APIClient) {
		c.client = client
	}
}

// WithLogger sets where request diagnostics go, the default discards them.
func WithLogger(logger logr.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithContractValidator checks every response that passes its status check
// against the OpenAPI contract.
func WithContractValidator(validator *ContractValidator) Option {
	return func(c *APIClient) {
		c.validator = validator
	}
}

// WithRequestSpecification replaces the request template derived from the
// configuration.
func WithRequestSpecification(spec RequestSpecification) Option {
	return func(c *APIClient) {
		c.spec = spec
	}
}

func NewAPIClientWithConfig(config *TestConfig, options ...Option) *APIClient {
	c := &APIClient{
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		spec:      NewRequestSpecification(config),
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
		runID:     NewRunID(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) RequestSpecification() RequestSpecification {
	return c.spec
}

// RunID is sent in the Tracestate header of every request.
func (c *APIClient) RunID() string {
	return c.runID
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace per request lets a failure be found in the service's logs.
func generateTraceID() string {
	return randomHex(16)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	return randomHex(8)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do executes a request built from the shared request specification, the
// endpoint path, an optional query and an optional JSON body, then applies
// the response specification and, if configured, the contract validator.
// The response is returned whenever one was received, even on error.
func (c *APIClient) Do(ctx context.Context, method, path string, query url.Values, body any, expected ResponseSpecification) (*Response, error) {
	req, err := c.spec.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", tracestateKey+"="+c.runID)

	traceID := extractTraceID(traceParent)
	log := c.logger.WithValues("method", method, "path", path, "traceID", traceID, "runID", c.runID)

	if c.spec.logRequests {
		log.Info("sending request", "uri", req.URL.String(), "body", body)
	}

	start := time.Now()
	httpResp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration)
		return nil, &TransportError{Method: method, Path: path, TraceID: traceID, Err: err}
	}

	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		log.Error(err, "reading response body", "duration", duration, "status", httpResp.StatusCode)
		return nil, &TransportError{Method: method, Path: path, TraceID: traceID, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		Method:     method,
		Path:       path,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
		TraceID:    traceID,
		Duration:   duration,
	}

	if c.spec.logRequests {
		log.Info("request completed", "status", resp.StatusCode, "duration", duration)
	}

	if c.spec.logResponses && len(respBody) > 0 {
		log.Info("response body", "body", string(respBody))
	}

	if err := expected.Validate(resp); err != nil {
		log.Info("unexpected status", "expected", expected.ExpectedStatus(), "got", resp.StatusCode, "body", string(respBody))
		return resp, err
	}

	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, resp); err != nil {
			log.Error(err, "contract violation", "status", resp.StatusCode)
			return resp, err
		}
	}

	return resp, nil
}

// doJSON executes a request and decodes the response into out.
func (c *APIClient) doJSON(ctx context.Context, method, path string, query url.Values, body any, expected ResponseSpecification, out any) error {
	resp, err := c.Do(ctx, method, path, query, body, expected)
	if err != nil {
		return err
	}

	return resp.Decode(out)
}

// pageQuery returns the page query, zero means the service default.
func pageQuery(page int) url.Values {
	if page <= 0 {
		return nil
	}

	return url.Values{
		"page": []string{strconv.Itoa(page)},
	}
}

// ListUsers retrieves one page of users.
func (c *APIClient) ListUsers(ctx context.Context, page int) (*ListUsersResponse, error) {
	var out ListUsersResponse

	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.ListUsers(), pageQuery(page), nil, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return &out, nil
}

// GetUser retrieves a single user.
func (c *APIClient) GetUser(ctx context.Context, id int) (*SingleUserResponse, error) {
	var out SingleUserResponse

	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.SingleUser(id), nil, nil, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}

	return &out, nil
}

// CreateUser creates a user, the service echoes the payload with generated fields.
func (c *APIClient) CreateUser(ctx context.Context, payload UserPayload) (*CreateUserResponse, error) {
	var out CreateUserResponse

	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.CreateUser(), nil, payload, ResponseSpecCreated, &out); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &out, nil
}

// UpdateUser replaces a user.
func (c *APIClient) UpdateUser(ctx context.Context, id int, payload UserPayload) (*UpdateUserResponse, error) {
	var out UpdateUserResponse

	if err := c.doJSON(ctx, http.MethodPut, c.endpoints.SingleUser(id), nil, payload, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}

	return &out, nil
}

// DeleteUser deletes a user.  The raw response is returned so callers can
// check the body is empty.
func (c *APIClient) DeleteUser(ctx context.Context, id int) (*Response, error) {
	resp, err := c.Do(ctx, http.MethodDelete, c.endpoints.SingleUser(id), nil, nil, ResponseSpecNoContent)
	if err != nil {
		return resp, fmt.Errorf("deleting user %d: %w", id, err)
	}

	return resp, nil
}

// Register registers a user and returns its ID and token.
func (c *APIClient) Register(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	var out LoginResponse

	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Register(), nil, credentials, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("registering %s: %w", credentials.Email, err)
	}

	return &out, nil
}

// RegisterExpectingError registers with credentials the service must reject.
func (c *APIClient) RegisterExpectingError(ctx context.Context, credentials Credentials) (*ErrorResponse, error) {
	var out ErrorResponse

	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Register(), nil, credentials, ResponseSpecBadRequest, &out); err != nil {
		return nil, fmt.Errorf("registering %s: %w", credentials.Email, err)
	}

	return &out, nil
}

// Login logs a user in and returns the token.
func (c *APIClient) Login(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	var out LoginResponse

	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Login(), nil, credentials, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("logging in %s: %w", credentials.Email, err)
	}

	return &out, nil
}

// LoginExpectingError logs in with credentials the service must reject.
func (c *APIClient) LoginExpectingError(ctx context.Context, credentials Credentials) (*ErrorResponse, error) {
	var out ErrorResponse

	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Login(), nil, credentials, ResponseSpecBadRequest, &out); err != nil {
		return nil, fmt.Errorf("logging in %s: %w", credentials.Email, err)
	}

	return &out, nil
}

// ListResources retrieves one page of the /unknown resources.
func (c *APIClient) ListResources(ctx context.Context, page int) (*ListResourcesResponse, error) {
	var out ListResourcesResponse

	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.ListResources(), pageQuery(page), nil, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}

	return &out, nil
}

// GetResource retrieves a single resource.
func (c *APIClient) GetResource(ctx context.Context, id int) (*SingleResourceResponse, error) {
	var out SingleResourceResponse

	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.SingleResource(id), nil, nil, ResponseSpecOK, &out); err != nil {
		return nil, fmt.Errorf("getting resource %d: %w", id, err)
	}

	return &out, nil
}
