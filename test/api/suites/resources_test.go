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

var _ = Describe("Resources", func() {
	Context("When listing resources", func() {
		Describe("Given the first page", func() {
			It("should contain tigerlily from 2004",
				api.Meta{Owner: "qa", Severity: api.SeverityNormal, Tags: []string{"resources"}}.Labels(),
				func() {
					// Given
					resources, err := client.ListResources(ctx, 0)
					Expect(err).NotTo(HaveOccurred())

					// When
					tigerlily, ok := api.FindResourceByName(resources.Resources, api.TigerlilyName)

					// Then
					Expect(ok).To(BeTrue(), "Expected resource %s to be present in the list", api.TigerlilyName)
					Expect(tigerlily.Year).To(Equal(api.TigerlilyYear))
				})
		})
	})

	Context("When retrieving a single resource", func() {
		Describe("Given a resource from the list", func() {
			It("should match the list entry", func() {
				resources, err := client.ListResources(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(resources.Resources).NotTo(BeEmpty())

				expected := resources.Resources[0]

				resource, err := client.GetResource(ctx, expected.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(resource.Resource).To(Equal(expected))
			})
		})
	})
})
