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
	"crypto/rand"
	"encoding/hex"
)

// randomHex returns n random bytes, hex encoded.
func randomHex(n int) string {
	bytes := make([]byte, n)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func generateRandomName(prefix string) string {
	return prefix + "-" + randomHex(4)
}

// NewRunID returns an identifier shared by every request of one client, it
// is sent in the trace state so a whole suite run can be found in the
// service's logs.
func NewRunID() string {
	return generateRandomName("run")
}
