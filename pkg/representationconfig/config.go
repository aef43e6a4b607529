/*
Copyright 2023 The Nuclio Authors.

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

package representationconfig

import (
	"github.com/go-playground/validator/v10"
	"github.com/nuclio/errors"
)

const (
	DefaultApplicationNamespace = "app"
	DefaultFormat               = "html"
	DefaultFormatParameter      = "_format"
	DefaultTemplate             = "default"
	DefaultGoroutineThreshold   = 10000
)

type Config struct {
	WebServer      WebServer                `json:"webServer,omitempty"`
	Metrics        Metrics                  `json:"metrics,omitempty"`
	HealthCheck    HealthCheck              `json:"healthCheck,omitempty"`
	Logger         Logger                   `json:"logger,omitempty"`
	Representation Representation           `json:"representation,omitempty"`
	Serializations map[string]Serialization `json:"serializations,omitempty"`
}

// GetSerialization returns the configuration of a serialization kind, or an empty (enabled)
// configuration if the kind was not configured
func (config *Config) GetSerialization(kind string) *Serialization {
	serializationConfiguration, found := config.Serializations[kind]
	if !found {
		return &Serialization{}
	}

	return &serializationConfiguration
}

// GetDefaultFormat returns the format used when the client did not specify one
func (config *Config) GetDefaultFormat() string {
	if config.Representation.DefaultFormat == nil {
		return DefaultFormat
	}

	return *config.Representation.DefaultFormat
}

// Validate verifies that the configuration carries all required values
func (config *Config) Validate() error {
	if err := validator.New().Struct(config); err != nil {
		return errors.Wrap(err, "Invalid configuration")
	}

	return nil
}
