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

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/santalovapolina/rest-project/pkg/constants"
)

const jsonContentType = "application/json"

// RequestSpecification holds the request defaults shared by every scenario.
// It is a value type with no exported fields, copies are cheap and nothing
// can modify a specification after construction, so one instance is safely
// shared across concurrently running scenarios.
type RequestSpecification struct {
	baseURL      string
	basePath     string
	contentType  string
	headers      http.Header
	logRequests  bool
	logResponses bool
}

// NewRequestSpecification builds the shared request template from config.
func NewRequestSpecification(config *TestConfig) RequestSpecification {
	headers := http.Header{}
	headers.Set("Accept", jsonContentType)
	headers.Set("User-Agent", constants.VersionString())

	if config.APIKey != "" {
		headers.Set("X-Api-Key", config.APIKey)
	}

	return RequestSpecification{
		baseURL:      config.BaseURL,
		basePath:     config.BasePath,
		contentType:  jsonContentType,
		headers:      headers,
		logRequests:  config.LogRequests,
		logResponses: config.LogResponses,
	}
}

func (s RequestSpecification) BaseURL() string {
	return s.baseURL
}

func (s RequestSpecification) BasePath() string {
	return s.basePath
}

func (s RequestSpecification) ContentType() string {
	return s.contentType
}

// Headers returns a copy of the default headers.
func (s RequestSpecification) Headers() http.Header {
	return s.headers.Clone()
}

// WithHeader returns a copy of the specification with an extra default header.
func (s RequestSpecification) WithHeader(key, value string) RequestSpecification {
	s.headers = s.headers.Clone()
	s.headers.Set(key, value)

	return s
}

// URL resolves an endpoint path and optional query against the base URL and path.
func (s RequestSpecification) URL(path string, query url.Values) string {
	u := s.baseURL + s.basePath + path

	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// NewRequest creates a request for the endpoint path with the default
// headers applied.  A non-nil body is serialized as JSON.
func (s RequestSpecification) NewRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.URL(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = s.headers.Clone()
	req.Header.Set("Content-Type", s.contentType)

	return req, nil
}

// ResponseSpecification asserts a single expected status code, and nothing
// else.  Field level checks belong to the scenarios.
type ResponseSpecification struct {
	expectedStatus int
}

// NewResponseSpecification returns a specification expecting status, zero
// accepts any status.
func NewResponseSpecification(status int) ResponseSpecification {
	return ResponseSpecification{
		expectedStatus: status,
	}
}

//nolint:gochecknoglobals
var (
	ResponseSpecAny        = NewResponseSpecification(0)
	ResponseSpecOK         = NewResponseSpecification(http.StatusOK)
	ResponseSpecCreated    = NewResponseSpecification(http.StatusCreated)
	ResponseSpecNoContent  = NewResponseSpecification(http.StatusNoContent)
	ResponseSpecBadRequest = NewResponseSpecification(http.StatusBadRequest)
	ResponseSpecNotFound   = NewResponseSpecification(http.StatusNotFound)
)

func (s ResponseSpecification) ExpectedStatus() int {
	return s.expectedStatus
}

// Validate returns a *StatusMismatchError when the response status differs
// from the expected one.
func (s ResponseSpecification) Validate(resp *Response) error {
	if s.expectedStatus == 0 || resp.StatusCode == s.expectedStatus {
		return nil
	}

	return &StatusMismatchError{
		Method:   resp.Method,
		Path:     resp.Path,
		Expected: s.expectedStatus,
		Actual:   resp.StatusCode,
		Body:     string(resp.Body),
		TraceID:  resp.TraceID,
	}
}
