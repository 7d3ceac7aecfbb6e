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

// Package api provides the HTTP contract test harness for the reqres.in
// demo API.
//
// # Layout
//
// The harness is split into small, independently testable pieces:
//
//   - Endpoints is the catalog of URL paths, relative to the base path.
//   - RequestSpecification and ResponseSpecification are the shared,
//     read-only request defaults and expected status templates.
//   - The payload and response models describe the JSON bodies exchanged
//     with the service and tolerate unknown fields.
//   - APIClient executes a request built from the above and returns either
//     a typed model or the raw Response.
//   - ContractValidator optionally checks every response against an
//     embedded OpenAPI description of the service.
//
// # Failure Taxonomy
//
// Transport, status, decoding and contract failures are reported as
// distinct error types (TransportError, StatusMismatchError, DecodeError and
// ContractError) so a failing scenario makes it obvious whether the contract
// was broken or a value was simply wrong.  Value assertions are left to the
// suites.
//
// # Target Service
//
// By default the suites start the in-process twin from pkg/server.  Setting
// API_BASE_URL runs the same suites against a live deployment.  The literal
// values asserted (tokens, emails, totals) describe the public demo dataset
// and are kept together in fixtures.go.
package api
