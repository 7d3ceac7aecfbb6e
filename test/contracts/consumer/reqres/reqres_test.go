//go:build contract

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

package reqres_test

import (
	"fmt"
	"net"
	"strconv"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	"github.com/santalovapolina/rest-project/test/api"
)

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Reqres Consumer Contract Suite")
}

// createClient creates a harness client for the mock server.
func createClient(config consumer.MockServerConfig) *api.APIClient {
	url := fmt.Sprintf("http://%s", net.JoinHostPort(config.Host, strconv.Itoa(config.Port)))

	return api.NewAPIClientWithConfig(&api.TestConfig{
		BaseURL:  url,
		BasePath: api.DefaultBasePath,
	}, api.WithLogger(GinkgoLogr))
}

var _ = Describe("Reqres Service Contract", func() {
	var pact *consumer.V4HTTPMockProvider

	BeforeEach(func() {
		var err error

		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "rest-project",
			Provider: "reqres",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Users", func() {
		Context("when retrieving a single user", func() {
			It("returns the user's details", func() {
				pact.AddInteraction().
					Given("user 2 exists").
					UponReceiving("a request for user 2").
					WithRequest("GET", "/api/users/2").
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"data": map[string]interface{}{
								"id":         matchers.Integer(api.JanetID),
								"email":      matchers.Regex(api.JanetEmail, `^[a-z.]+@reqres\.in$`),
								"first_name": matchers.String(api.JanetFirstName),
								"last_name":  matchers.String(api.JanetLastName),
								"avatar":     matchers.String("https://reqres.in/img/faces/2-image.jpg"),
							},
						})
					})

				test := func(config consumer.MockServerConfig) error {
					user, err := createClient(config).GetUser(testingT.Context(), api.JanetID)
					if err != nil {
						return fmt.Errorf("getting user: %w", err)
					}

					Expect(user.User.ID).To(Equal(api.JanetID))
					Expect(user.User.Email).To(HaveSuffix(api.EmailDomain))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when creating a user", func() {
			It("echoes the payload with generated fields", func() {
				pact.AddInteraction().
					UponReceiving("a request to create a user").
					WithRequest("POST", "/api/users", func(b *consumer.V4RequestBuilder) {
						b.JSONBody(map[string]interface{}{
							"name": matchers.String("morpheus"),
							"job":  matchers.String("leader"),
						})
					}).
					WillRespondWith(201, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"name":      matchers.String("morpheus"),
							"job":       matchers.String("leader"),
							"id":        matchers.Like("404"),
							"createdAt": matchers.Like("2026-10-19T10:00:00.000Z"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					created, err := createClient(config).CreateUser(testingT.Context(), api.UserPayload{Name: "morpheus", Job: "leader"})
					if err != nil {
						return fmt.Errorf("creating user: %w", err)
					}

					Expect(created.Name).To(Equal("morpheus"))
					Expect(created.ID).NotTo(BeEmpty())
					Expect(created.CreatedAt).NotTo(BeEmpty())

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("Authentication", func() {
		Context("when registering a defined user", func() {
			It("returns an id and token", func() {
				pact.AddInteraction().
					Given("eve.holt is a defined user").
					UponReceiving("a request to register eve.holt").
					WithRequest("POST", "/api/register", func(b *consumer.V4RequestBuilder) {
						b.JSONBody(map[string]interface{}{
							"email":    matchers.String(api.RegisteredEmail),
							"password": matchers.String(api.RegisteredPassword),
						})
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"id":    matchers.Integer(api.RegisteredUserID),
							"token": matchers.String(api.RegistrationToken),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					registered, err := createClient(config).Register(testingT.Context(), api.NewCredentials().Build())
					if err != nil {
						return fmt.Errorf("registering: %w", err)
					}

					Expect(registered.Token).NotTo(BeEmpty())

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when registering without a password", func() {
			It("returns an error", func() {
				pact.AddInteraction().
					UponReceiving("a request to register without a password").
					WithRequest("POST", "/api/register", func(b *consumer.V4RequestBuilder) {
						b.JSONBody(map[string]interface{}{
							"email":    matchers.String(api.RegisteredEmail),
							"password": "",
						})
					}).
					WillRespondWith(400, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"error": matchers.String("Missing password"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					rejected, err := createClient(config).RegisterExpectingError(testingT.Context(), api.NewCredentials().WithoutPassword().Build())
					if err != nil {
						return fmt.Errorf("registering: %w", err)
					}

					Expect(rejected.Error).To(Equal("Missing password"))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})
})
