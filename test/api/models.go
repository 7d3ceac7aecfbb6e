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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserPayload is the request body for creating and updating a user.
type UserPayload struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// CreateUserResponse is returned by a successful create.  ID and CreatedAt
// are generated by the server and treated as opaque strings.
type CreateUserResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	ID        string `json:"id" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
}

// UpdateUserResponse is returned by a successful update.
type UpdateUserResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt" validate:"required"`
}

// Credentials is the request body for registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by registration, with an ID, and by login,
// without one.  The ID is numeric on the wire.
type LoginResponse struct {
	ID    json.Number `json:"id,omitempty"`
	Token string      `json:"token" validate:"required"`
}

// ErrorResponse is the body of a rejected registration or login.
type ErrorResponse struct {
	Error string `json:"error" validate:"required"`
}

// User is a single user record, both as a list element and nested in a
// SingleUserResponse.
type User struct {
	ID        int    `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// SingleUserResponse wraps a user lookup.
type SingleUserResponse struct {
	User User `json:"data"`
}

// Pagination is the envelope metadata shared by list responses.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListUsersResponse is one page of users.
type ListUsersResponse struct {
	Pagination

	Users []User `json:"data" validate:"required,dive"`
}

// Resource is one colour record of the /unknown collection.
type Resource struct {
	ID           int    `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// SingleResourceResponse wraps a resource lookup.
type SingleResourceResponse struct {
	Resource Resource `json:"data"`
}

// ListResourcesResponse is one page of resources.
type ListResourcesResponse struct {
	Pagination

	Resources []Resource `json:"data" validate:"required,dive"`
}

// structValidator is safe for concurrent use and caches struct metadata.
//
//nolint:gochecknoglobals
var structValidator = validator.New()

// ErrNotObject is wrapped by a DecodeError when a body is valid JSON but not
// an object, e.g. null or an array.
var ErrNotObject = errors.New("body is not a JSON object")

// Decode unmarshals a JSON body into the model pointed to by v and checks its
// required fields.  Every model is an object, anything else including null
// is rejected.  Unknown fields are ignored.  Any failure is a *DecodeError.
func Decode(body []byte, v any) error {
	model := strings.TrimPrefix(fmt.Sprintf("%T", v), "*")

	if trimmed := bytes.TrimLeft(body, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return &DecodeError{Model: model, Body: string(body), Err: ErrNotObject}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Model: model, Body: string(body), Err: err}
	}

	if err := structValidator.Struct(v); err != nil {
		return &DecodeError{Model: model, Body: string(body), Err: err}
	}

	return nil
}
