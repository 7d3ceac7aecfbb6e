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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/santalovapolina/rest-project/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When registering", func() {
		Describe("Given a user defined by the service", func() {
			It("should return the registration token",
				api.Meta{Owner: "qa", Severity: api.SeverityBlocker, Tags: []string{"auth", "smoke"}}.Labels(),
				func() {
					// Given
					credentials := api.NewCredentials().Build()

					// When
					registered, err := client.Register(ctx, credentials)

					// Then
					Expect(err).NotTo(HaveOccurred())
					Expect(registered.Token).NotTo(BeEmpty())
					Expect(registered.Token).To(Equal(api.RegistrationToken))
					Expect(registered.ID.Int64()).To(BeEquivalentTo(api.RegisteredUserID))
				})
		})

		Describe("Given invalid credentials", func() {
			It("should reject a missing password", Label("negative"), func() {
				rejected, err := client.RegisterExpectingError(ctx, api.NewCredentials().WithoutPassword().Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(rejected.Error).To(Equal("Missing password"))
			})

			It("should reject a missing email", Label("negative"), func() {
				rejected, err := client.RegisterExpectingError(ctx, api.NewCredentials().WithEmail("").Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(rejected.Error).To(Equal("Missing email or username"))
			})

			It("should reject a user the service doesn't know", Label("negative"), func() {
				rejected, err := client.RegisterExpectingError(ctx, api.NewCredentials().WithEmail("sydney@fife").Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(rejected.Error).To(Equal("Note: Only defined users succeed registration"))
			})
		})
	})

	Context("When logging in", func() {
		Describe("Given a registered user", func() {
			It("should return the same token as registration",
				api.Meta{Owner: "qa", Severity: api.SeverityCritical, Tags: []string{"auth"}}.Labels(),
				func() {
					loggedIn, err := client.Login(ctx, api.NewCredentials().Build())

					Expect(err).NotTo(HaveOccurred())
					Expect(loggedIn.Token).To(Equal(api.RegistrationToken))
				})
		})

		Describe("Given invalid credentials", func() {
			It("should reject a missing password", Label("negative"), func() {
				rejected, err := client.LoginExpectingError(ctx, api.NewCredentials().WithoutPassword().Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(rejected.Error).To(Equal("Missing password"))
			})
		})
	})
})
