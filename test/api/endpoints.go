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
	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.  Paths are relative to the
// request specification's base path.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParameter encodes a path parameter exactly as a generated OpenAPI
// client would.  Only integer identifiers are accepted by the catalog so
// styling cannot fail.
func pathParameter(name string, value int) string {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		panic(err)
	}

	return styled
}

// User endpoints.
func (e *Endpoints) ListUsers() string {
	return "/users"
}

func (e *Endpoints) CreateUser() string {
	return "/users"
}

func (e *Endpoints) SingleUser(id int) string {
	return "/users/" + pathParameter("id", id)
}

// Authentication endpoints.
func (e *Endpoints) Register() string {
	return "/register"
}

func (e *Endpoints) Login() string {
	return "/login"
}

// Resource endpoints.
func (e *Endpoints) ListResources() string {
	return "/unknown"
}

func (e *Endpoints) SingleResource(id int) string {
	return "/unknown/" + pathParameter("id", id)
}
