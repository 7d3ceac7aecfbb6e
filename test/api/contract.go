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
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed reqres-openapi.yaml
var openAPIDocument []byte

// ContractValidator checks responses against the embedded OpenAPI
// description of the service.
type ContractValidator struct {
	router routers.Router
}

// NewContractValidator loads the OpenAPI document and binds its server to
// the given base URL and path, so the same document routes requests to a
// local twin or to the live service.
func NewContractValidator(ctx context.Context, baseURL, basePath string) (*ContractValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	doc.Servers = openapi3.Servers{
		&openapi3.Server{
			URL: baseURL + basePath,
		},
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAPI router: %w", err)
	}

	return &ContractValidator{
		router: router,
	}, nil
}

// Validate checks a response to req.  Undocumented routes and status codes
// are violations too.
func (v *ContractValidator) Validate(ctx context.Context, req *http.Request, resp *Response) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return v.contractError(resp, fmt.Errorf("finding route: %w", err))
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return v.contractError(resp, err)
	}

	return nil
}

func (v *ContractValidator) contractError(resp *Response, err error) error {
	return &ContractError{
		Method:  resp.Method,
		Path:    resp.Path,
		Status:  resp.StatusCode,
		TraceID: resp.TraceID,
		Err:     err,
	}
}
