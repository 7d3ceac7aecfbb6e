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
	"strings"

	"github.com/onsi/ginkgo/v2"
)

// Severity ranks how bad a failing scenario is for consumers of the service.
type Severity string

const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityNormal   Severity = "normal"
	SeverityMinor    Severity = "minor"
	SeverityTrivial  Severity = "trivial"
)

// Meta is reporting metadata attached to a scenario.  It has no effect on
// execution, reporters and label filters consume it.
type Meta struct {
	Owner    string
	Severity Severity
	Tags     []string
}

// labelValue makes free text usable as a ginkgo label.
func labelValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.Map(func(r rune) rune {
		switch r {
		case '&', '|', '!', ',', '(', ')', '/', ' ':
			return '-'
		}

		return r
	}, s)
}

// Labels renders the metadata as a ginkgo decorator, e.g.
// Label("owner:qa", "severity:critical", "users").
func (m Meta) Labels() ginkgo.Labels {
	var labels ginkgo.Labels

	if m.Owner != "" {
		labels = append(labels, "owner:"+labelValue(m.Owner))
	}

	if m.Severity != "" {
		labels = append(labels, "severity:"+string(m.Severity))
	}

	for _, tag := range m.Tags {
		if tag = labelValue(tag); tag != "" {
			labels = append(labels, tag)
		}
	}

	return labels
}
