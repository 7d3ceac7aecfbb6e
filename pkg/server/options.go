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
	"time"

	"github.com/spf13/pflag"
)

// Options tunes the twin's behaviour.
type Options struct {
	// ListenAddress is where the twin binary serves, unused when the twin
	// is mounted on a test server.
	ListenAddress string

	// Delay is added to every request before it is handled.
	Delay time.Duration

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds how long in flight requests may take to
	// complete once a shutdown is requested.
	ShutdownTimeout time.Duration
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.Delay, "delay", 0, "Latency added to every request.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", 10*time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "How long to wait for requests to drain on shutdown.")
}
