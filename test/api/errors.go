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
	"fmt"
)

// TransportError is returned when no HTTP response was received at all,
// e.g. connection refused, DNS failure or a timeout.
type TransportError struct {
	Method  string
	Path    string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: http request failed (trace ID: %s): %v", e.Method, e.Path, e.TraceID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusMismatchError is returned when the status code differs from the one
// required by the response specification.
type StatusMismatchError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

// DecodeError is returned when a body cannot be turned into the requested
// model, either because it isn't valid JSON of the right shape or because a
// required field is missing.
type DecodeError struct {
	Model string
	Body  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v, body: %s", e.Model, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ContractError is returned when a response doesn't conform to the OpenAPI
// description of the service.
type ContractError struct {
	Method  string
	Path    string
	Status  int
	TraceID string
	Err     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s %s: status %d violates the API contract (trace ID: %s): %v", e.Method, e.Path, e.Status, e.TraceID, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
