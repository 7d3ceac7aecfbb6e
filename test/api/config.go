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
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBasePath is the path prefix every endpoint lives under.
	DefaultBasePath = "/api"

	// LiveBaseURL is the public deployment of the demo service.
	LiveBaseURL = "https://reqres.in"
)

var (
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidBasePath = errors.New("invalid base path")
)

type TestConfig struct {
	// BaseURL is the scheme and host of the service, empty means the
	// suites should start the in-process twin.
	BaseURL          string
	BasePath         string
	APIKey           string
	RequestTimeout   time.Duration
	ValidateContract bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:          strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/"),
		BasePath:         getStringWithDefault("API_BASE_PATH", DefaultBasePath),
		APIKey:           os.Getenv("API_KEY"),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		DebugLogging:     getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseTwin reports whether no live deployment was configured.
func (c *TestConfig) UseTwin() bool {
	return c.BaseURL == ""
}

// WithBaseURL returns a copy of the configuration pointing at baseURL, this
// is how the suites bind to a freshly started twin.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	out := *c
	out.BaseURL = strings.TrimSuffix(baseURL, "/")

	return &out
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api directory
		"../../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// No .env file, everything comes from the environment.
		return
	}

	// Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validate(config *TestConfig) error {
	if !strings.HasPrefix(config.BasePath, "/") {
		return fmt.Errorf("%w: %q must start with /", ErrInvalidBasePath, config.BasePath)
	}

	if config.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q must use http or https", ErrInvalidBaseURL, config.BaseURL)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, config.BaseURL)
	}

	return nil
}
