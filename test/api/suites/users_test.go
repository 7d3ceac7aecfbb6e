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
	"errors"
	"net/http"
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/santalovapolina/rest-project/test/api"
)

var _ = Describe("User Management", func() {
	Context("When listing users", func() {
		Describe("Given the second page", func() {
			It("should report the total number of users",
				api.Meta{Owner: "qa", Severity: api.SeverityCritical, Tags: []string{"users", "smoke"}}.Labels(),
				func() {
					users, err := client.ListUsers(ctx, 2)

					Expect(err).NotTo(HaveOccurred())
					Expect(users.Page).To(Equal(2))
					Expect(users.Total).To(Equal(api.TotalUsers))
					Expect(users.Users).To(HaveLen(users.PerPage))
				})

			It("should only contain emails in the demo domain",
				api.Meta{Owner: "qa", Severity: api.SeverityNormal, Tags: []string{"users"}}.Labels(),
				func() {
					users, err := client.ListUsers(ctx, 2)

					Expect(err).NotTo(HaveOccurred())
					api.VerifyEmailsEndWith(users.Users, api.EmailDomain)
				})

			It("should contain the expected users",
				api.Meta{Owner: "qa", Severity: api.SeverityNormal, Tags: []string{"users"}}.Labels(),
				func() {
					// Given
					users, err := client.ListUsers(ctx, 2)
					Expect(err).NotTo(HaveOccurred())

					// When
					matching := slices.Collect(api.EmailDomainSet(users.Users, api.EmailPattern).All())

					// Then
					Expect(matching).To(ContainElement(api.RachelEmail))
					api.VerifyEmailPresence(users.Users, []string{api.RachelEmail})
					Expect(api.LastNames(users.Users)).To(ContainElement(api.FergusonLastName))

					tobias, ok := api.FindUserByID(users.Users, api.TobiasID)
					Expect(ok).To(BeTrue(), "Expected user %d to be present in the list", api.TobiasID)
					Expect(tobias.Email).To(Equal(api.TobiasEmail))
				})

			It("should only return users that pass a predicate",
				api.Meta{Owner: "qa", Severity: api.SeverityMinor, Tags: []string{"users"}}.Labels(),
				func() {
					users, err := client.ListUsers(ctx, 2)
					Expect(err).NotTo(HaveOccurred())

					startsWithT := api.FilterUsers(users.Users, func(u api.User) bool {
						return strings.HasPrefix(u.FirstName, "T")
					})

					Expect(api.Emails(startsWithT)).To(ContainElement(api.TobiasEmail))
					Expect(api.Emails(startsWithT)).NotTo(ContainElement(api.RachelEmail))
				})
		})

		Describe("Given a page past the end", func() {
			It("should return no users", func() {
				users, err := client.ListUsers(ctx, 99)

				Expect(err).NotTo(HaveOccurred())
				Expect(users.Total).To(Equal(api.TotalUsers))
				Expect(users.Users).To(BeEmpty())
			})
		})
	})

	Context("When retrieving a single user", func() {
		Describe("Given an existing user", func() {
			It("should return the user's details",
				api.Meta{Owner: "qa", Severity: api.SeverityBlocker, Tags: []string{"users", "smoke"}}.Labels(),
				func() {
					user, err := client.GetUser(ctx, api.JanetID)

					Expect(err).NotTo(HaveOccurred())
					api.VerifyUserFields(user.User, api.JanetID, api.JanetEmail, api.JanetFirstName, api.JanetLastName)
				})
		})

		Describe("Given a user that doesn't exist", func() {
			It("should return not found", Label("negative"), func() {
				resp, err := client.Do(ctx, http.MethodGet, client.Endpoints().SingleUser(api.UnknownUserID), nil, nil, api.ResponseSpecNotFound)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Body).To(MatchJSON(`{}`))
			})

			It("should report a status mismatch to typed callers", Label("negative"), func() {
				_, err := client.GetUser(ctx, api.UnknownUserID)

				var mismatch *api.StatusMismatchError

				Expect(err).To(MatchError(ContainSubstring("unexpected status code")))
				Expect(errors.As(err, &mismatch)).To(BeTrue())
				Expect(mismatch.Actual).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("When creating a user", func() {
		DescribeTable("Given a valid payload",
			func(name, job string) {
				// Given
				payload := api.NewUserPayload().WithName(name).WithJob(job).Build()

				// When
				created, err := client.CreateUser(ctx, payload)

				// Then
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Name).To(Equal(name))
				Expect(created.Job).To(Equal(job))
				Expect(created.ID).NotTo(BeEmpty())
				Expect(created.CreatedAt).NotTo(BeEmpty())
			},
			api.Meta{Owner: "qa", Severity: api.SeverityCritical, Tags: []string{"users"}}.Labels(),
			Entry("morpheus the leader", "morpheus", "leader"),
			Entry("a professional martian", "Elon Musk", "professional martian"),
		)

		Describe("Given a generated payload", func() {
			It("should echo exactly what was sent", func() {
				payload := api.NewUserPayload().Build()

				created, err := client.CreateUser(ctx, payload)

				Expect(err).NotTo(HaveOccurred())
				Expect(api.UserPayload{Name: created.Name, Job: created.Job}).To(Equal(payload))
			})
		})
	})

	Context("When updating a user", func() {
		DescribeTable("Given a valid payload",
			func(name, job string) {
				// Given
				payload := api.NewUserPayload().WithName(name).WithJob(job).Build()

				// When
				updated, err := client.UpdateUser(ctx, api.JanetID, payload)

				// Then
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Name).To(Equal(name))
				Expect(updated.Job).To(Equal(job))
				Expect(updated.UpdatedAt).NotTo(BeEmpty())
			},
			api.Meta{Owner: "qa", Severity: api.SeverityNormal, Tags: []string{"users"}}.Labels(),
			Entry("morpheus moves to zion", "morpheus", "zion resident"),
			Entry("moe tends bar", "Moe", "Bartender"),
		)
	})

	Context("When deleting a user", func() {
		Describe("Given an existing user", func() {
			It("should return no content",
				api.Meta{Owner: "qa", Severity: api.SeverityNormal, Tags: []string{"users"}}.Labels(),
				func() {
					resp, err := client.DeleteUser(ctx, api.JanetID)

					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
					Expect(resp.Body).To(BeEmpty())
				})
		})
	})
})
