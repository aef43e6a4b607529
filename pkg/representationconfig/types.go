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

type WebServer struct {
	Enabled       *bool  `json:"enabled,omitempty"`
	ListenAddress string `json:"listenAddress,omitempty" validate:"required"`
}

type Metrics struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty" validate:"required,startswith=/"`
}

type HealthCheck struct {
	Enabled *bool `json:"enabled,omitempty"`

	// liveness fails once the number of goroutines exceeds this
	GoroutineThreshold int `json:"goroutineThreshold,omitempty" validate:"gte=0"`
}

type Logger struct {
	Level string `json:"level,omitempty" validate:"oneof=debug info warn error"`
}

type Representation struct {

	// serializations whose namespace matches this one are tried before all others
	ApplicationNamespace string `json:"applicationNamespace,omitempty" validate:"required"`

	// format assumed when the client sends no Accept header (or */*). an explicit
	// empty string means "no format", which yields 404/406 instead of a default page
	DefaultFormat *string `json:"defaultFormat,omitempty"`

	// name of the query parameter that overrides the Accept header
	FormatParameter string `json:"formatParameter,omitempty" validate:"required"`

	// media type -> format token, added on top of the built-in mapping
	MediaTypes map[string]string `json:"mediaTypes,omitempty"`

	PageTemplatesDir string `json:"pageTemplatesDir,omitempty"`
	DefaultTemplate  string `json:"defaultTemplate,omitempty" validate:"required"`
}

type Serialization struct {
	Enabled    *bool                  `json:"enabled,omitempty"`
	Namespace  string                 `json:"namespace,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// IsEnabled returns whether the serialization should be created. serializations are enabled unless
// explicitly disabled
func (s *Serialization) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}
