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
	"fmt"
	"strings"
)

const (
	// DefaultPerPage is the page size used when a request does not ask for one.
	DefaultPerPage = 6

	// Token is the token handed out for every successful registration or login.
	Token = "QpwL5tke4Pnpja7X4"

	avatarURLFormat = "https://reqres.in/img/faces/%d-image.jpg"
	emailDomain     = "reqres.in"
)

// user is the wire shape of a user record.
type user struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// resource is the wire shape of a colour resource served under /unknown.
type resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

type support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// page is the pagination envelope shared by every list endpoint.
type page[T any] struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []T     `json:"data"`
	Support    support `json:"support"`
}

// single is the envelope of a single record lookup.
type single[T any] struct {
	Data    T       `json:"data"`
	Support support `json:"support"`
}

//nolint:gochecknoglobals
var defaultSupport = support{
	URL:  "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
	Text: "Tired of writing endless social media content? Let Content Caddy generate it for you.",
}

func newUser(id int, firstName, lastName string) user {
	return user{
		ID:        id,
		Email:     fmt.Sprintf("%s.%s@%s", strings.ToLower(firstName), strings.ToLower(lastName), emailDomain),
		FirstName: firstName,
		LastName:  lastName,
		Avatar:    fmt.Sprintf(avatarURLFormat, id),
	}
}

// users is the fixed demo dataset, ordered by id.
//
//nolint:gochecknoglobals
var users = []user{
	newUser(1, "George", "Bluth"),
	newUser(2, "Janet", "Weaver"),
	newUser(3, "Emma", "Wong"),
	newUser(4, "Eve", "Holt"),
	newUser(5, "Charles", "Morris"),
	newUser(6, "Tracey", "Ramos"),
	newUser(7, "Michael", "Lawson"),
	newUser(8, "Lindsay", "Ferguson"),
	newUser(9, "Tobias", "Funke"),
	newUser(10, "Byron", "Fields"),
	newUser(11, "George", "Edwards"),
	newUser(12, "Rachel", "Howell"),
}

//nolint:gochecknoglobals
var resources = []resource{
	{ID: 1, Name: "cerulean", Year: 2000, Color: "#98B2D1", PantoneValue: "15-4020"},
	{ID: 2, Name: "fuchsia rose", Year: 2001, Color: "#C74375", PantoneValue: "17-2031"},
	{ID: 3, Name: "true red", Year: 2002, Color: "#BF1932", PantoneValue: "19-1664"},
	{ID: 4, Name: "aqua sky", Year: 2003, Color: "#7BC4C4", PantoneValue: "14-4811"},
	{ID: 5, Name: "tigerlily", Year: 2004, Color: "#E2583E", PantoneValue: "17-1456"},
	{ID: 6, Name: "blue turquoise", Year: 2005, Color: "#53B0AE", PantoneValue: "15-5217"},
	{ID: 7, Name: "sand dollar", Year: 2006, Color: "#DECDBE", PantoneValue: "13-1106"},
	{ID: 8, Name: "chili pepper", Year: 2007, Color: "#9B1B30", PantoneValue: "19-1557"},
	{ID: 9, Name: "blue iris", Year: 2008, Color: "#5A5B9F", PantoneValue: "18-3943"},
	{ID: 10, Name: "mimosa", Year: 2009, Color: "#F0C05A", PantoneValue: "14-0848"},
	{ID: 11, Name: "turquoise", Year: 2010, Color: "#45B5AA", PantoneValue: "15-5519"},
	{ID: 12, Name: "honeysuckle", Year: 2011, Color: "#D94F70", PantoneValue: "18-2120"},
}

// paginate slices items into the requested page.  Pages beyond the end
// yield an empty, non-nil data array as the live service does.
func paginate[T any](items []T, pageNumber, perPage int) page[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	totalPages := len(items) / perPage
	if len(items)%perPage != 0 {
		totalPages++
	}

	// Bounded by len(items) so arbitrary query values cannot overflow.
	start := len(items)
	if pageNumber <= totalPages {
		start = (pageNumber - 1) * perPage
	}

	end := start + min(perPage, len(items)-start)

	data := make([]T, end-start)
	copy(data, items[start:end])

	return page[T]{
		Page:       pageNumber,
		PerPage:    perPage,
		Total:      len(items),
		TotalPages: totalPages,
		Data:       data,
		Support:    defaultSupport,
	}
}

func findUser(id int) (user, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}

	return user{}, false
}

func findUserByEmail(email string) (user, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}

	return user{}, false
}

func findResource(id int) (resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}

	return resource{}, false
}
