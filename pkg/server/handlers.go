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

package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	// timestampFormat matches the millisecond precision ISO-8601 stamps of the live service.
	timestampFormat = "2006-01-02T15:04:05.000Z"

	errMissingEmail    = "Missing email or username"
	errMissingPassword = "Missing password"
	errUndefinedUser   = "Note: Only defined users succeed registration"
	errUserNotFound    = "user not found"
)

type credentials struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return i
}

// pathID parses the {id} URL parameter, the second return value is false
// when it isn't an integer.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// decodeObject reads a JSON object body.  An empty body decodes to an
// empty object.
func decodeObject(r *http.Request) (map[string]any, error) {
	object := map[string]any{}

	if r.ContentLength == 0 {
		return object, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&object); err != nil {
		return nil, err
	}

	// A literal null body.
	if object == nil {
		object = map[string]any{}
	}

	return object, nil
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(timestampFormat)
}

// listUsers handles GET /users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(users, queryInt(r, "page", 1), queryInt(r, "per_page", DefaultPerPage)))
}

// getUser handles GET /users/{id}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	u, ok := findUser(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, single[user]{Data: u, Support: defaultSupport})
}

// createUser handles POST /users, the body is echoed back with a generated
// id and creation time.  Nothing is persisted.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	object, err := decodeObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	object["id"] = strconv.Itoa(rand.IntN(1000) + 1) //nolint:gosec
	object["createdAt"] = s.timestamp()

	writeJSON(w, http.StatusCreated, object)
}

// updateUser handles PUT and PATCH /users/{id}.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	object, err := decodeObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	object["updatedAt"] = s.timestamp()

	writeJSON(w, http.StatusOK, object)
}

// deleteUser handles DELETE /users/{id}.
func (s *Server) deleteUser(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// listResources handles GET /unknown.
func (s *Server) listResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(resources, queryInt(r, "page", 1), queryInt(r, "per_page", DefaultPerPage)))
}

// getResource handles GET /unknown/{id}.
func (s *Server) getResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	res, ok := findResource(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, single[resource]{Data: res, Support: defaultSupport})
}

// readCredentials decodes and checks a register or login body, writing the
// error response itself when the body is unusable.
func readCredentials(w http.ResponseWriter, r *http.Request) (credentials, bool) {
	var c credentials

	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, errMissingEmail)
		return c, false
	}

	if c.Email == "" {
		c.Email = c.Username
	}

	if c.Email == "" {
		writeError(w, http.StatusBadRequest, errMissingEmail)
		return c, false
	}

	if c.Password == "" {
		writeError(w, http.StatusBadRequest, errMissingPassword)
		return c, false
	}

	return c, true
}

// register handles POST /register.  Only users in the dataset can register.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	c, ok := readCredentials(w, r)
	if !ok {
		return
	}

	u, ok := findUserByEmail(c.Email)
	if !ok {
		writeError(w, http.StatusBadRequest, errUndefinedUser)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":    u.ID,
		"token": Token,
	})
}

// login handles POST /login.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	c, ok := readCredentials(w, r)
	if !ok {
		return
	}

	if _, ok := findUserByEmail(c.Email); !ok {
		writeError(w, http.StatusBadRequest, errUserNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": Token,
	})
}

// logout handles POST /logout.
func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}
