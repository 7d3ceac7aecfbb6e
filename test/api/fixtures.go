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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	. "github.com/onsi/gomega"
)

// Known data served by reqres.in and the twin.  These are properties of the
// demo dataset, not of the API, and change if the dataset does.
const (
	TotalUsers = 12

	RegisteredEmail    = "eve.holt@reqres.in"
	RegisteredPassword = "pistol"
	RegisteredUserID   = 4
	RegistrationToken  = "QpwL5tke4Pnpja7X4"

	EmailDomain = "reqres.in"

	// EmailPattern selects addresses of the demo domain.
	EmailPattern = `.*?@reqres.in`

	JanetID        = 2
	JanetEmail     = "janet.weaver@reqres.in"
	JanetFirstName = "Janet"
	JanetLastName  = "Weaver"

	RachelEmail      = "rachel.howell@reqres.in"
	FergusonLastName = "Ferguson"
	TobiasID         = 9
	TobiasEmail      = "tobias.funke@reqres.in"

	TigerlilyName = "tigerlily"
	TigerlilyYear = 2004

	// UnknownUserID is past the end of the dataset.
	UnknownUserID = 23
)

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload UserPayload
}

// NewUserPayload creates a user payload builder with a unique name.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: UserPayload{
			Name: generateRandomName("testautomation"),
			Job:  "tester",
		},
	}
}

func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload.Name = name
	return b
}

func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload.Job = job
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() UserPayload {
	return b.payload
}

// CredentialsBuilder builds register and login payloads.
type CredentialsBuilder struct {
	credentials Credentials
}

// NewCredentials creates a builder defaulting to the one user the service
// allows to register.
func NewCredentials() *CredentialsBuilder {
	return &CredentialsBuilder{
		credentials: Credentials{
			Email:    RegisteredEmail,
			Password: RegisteredPassword,
		},
	}
}

func (b *CredentialsBuilder) WithEmail(email string) *CredentialsBuilder {
	b.credentials.Email = email
	return b
}

func (b *CredentialsBuilder) WithPassword(password string) *CredentialsBuilder {
	b.credentials.Password = password
	return b
}

// WithoutPassword clears the password so the service rejects the request.
func (b *CredentialsBuilder) WithoutPassword() *CredentialsBuilder {
	return b.WithPassword("")
}

// Build returns the completed credentials.
func (b *CredentialsBuilder) Build() Credentials {
	return b.credentials
}

// Emails extracts the email address of every user, in order.
func Emails(users []User) []string {
	emails := make([]string, len(users))

	for i := range users {
		emails[i] = users[i].Email
	}

	return emails
}

// LastNames extracts the last name of every user, in order.
func LastNames(users []User) []string {
	names := make([]string, len(users))

	for i := range users {
		names[i] = users[i].LastName
	}

	return names
}

// FilterUsers returns the users matching the predicate, in order.
func FilterUsers(users []User, predicate func(User) bool) []User {
	var out []User

	for _, user := range users {
		if predicate(user) {
			out = append(out, user)
		}
	}

	return out
}

// FindUserByID returns the first user with the given ID.
func FindUserByID(users []User, id int) (User, bool) {
	i := slices.IndexFunc(users, func(u User) bool {
		return u.ID == id
	})
	if i < 0 {
		return User{}, false
	}

	return users[i], true
}

// FindResourceByName returns the first resource with the given name.
func FindResourceByName(resources []Resource, name string) (Resource, bool) {
	i := slices.IndexFunc(resources, func(r Resource) bool {
		return r.Name == name
	})
	if i < 0 {
		return Resource{}, false
	}

	return resources[i], true
}

// EmailDomainSet returns the distinct emails fully matching pattern, which
// must be a valid regular expression.
func EmailDomainSet(users []User, pattern string) set.Set[string] {
	re := regexp.MustCompile("^(?:" + pattern + ")$")

	matched := FilterUsers(users, func(u User) bool {
		return re.MatchString(u.Email)
	})

	return set.New[string](Emails(matched)...)
}

// VerifyEmailsEndWith verifies every user's email ends with suffix.
func VerifyEmailsEndWith(users []User, suffix string) {
	Expect(users).NotTo(BeEmpty())
	Expect(Emails(users)).To(HaveEach(HaveSuffix(suffix)), "Expected all emails to end with %s", suffix)
}

// VerifyEmailPresence verifies the expected emails are present in the list.
func VerifyEmailPresence(users []User, expectedEmails []string) {
	emails := Emails(users)
	for _, expected := range expectedEmails {
		Expect(emails).To(ContainElement(expected), "Expected email %s to be present in the list", expected)
	}
}

// VerifyUserFields verifies the identity fields of a user record, the avatar
// is only checked for being a URL.
func VerifyUserFields(user User, id int, email, firstName, lastName string) {
	Expect(user.ID).To(Equal(id))
	Expect(user.Email).To(Equal(email))
	Expect(user.FirstName).To(Equal(firstName))
	Expect(user.LastName).To(Equal(lastName))

	if user.Avatar != "" {
		Expect(strings.HasPrefix(user.Avatar, "http")).To(BeTrue(), "Expected avatar %q to be a URL", user.Avatar)
	}
}
