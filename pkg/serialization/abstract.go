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

package serialization

import (
	"strings"

	"github.com/nuclio/logger"
	"github.com/samber/lo"
)

// AbstractSerialization is the base struct for all serializations
type AbstractSerialization struct {
	Logger        logger.Logger
	Kind          string
	Formats       []string
	Configuration *Configuration
}

func NewAbstractSerialization(parentLogger logger.Logger,
	configuration *Configuration,
	formats []string) *AbstractSerialization {
	return &AbstractSerialization{
		Logger:        parentLogger,
		Kind:          configuration.Kind,
		Formats:       formats,
		Configuration: configuration,
	}
}

// Accepts returns whether the format is one of the serialization's formats. format tokens are
// case insensitive
func (as *AbstractSerialization) Accepts(format string) bool {
	return lo.Contains(as.Formats, strings.ToLower(format))
}

// GetKind returns the kind of serialization
func (as *AbstractSerialization) GetKind() string {
	return as.Kind
}

// GetFormats returns the formats the serialization accepts
func (as *AbstractSerialization) GetFormats() []string {
	return as.Formats
}

// WrapWithAlias returns the object as is when there's no alias, or a single entry map
// holding the object under the alias
func WrapWithAlias(object interface{}, alias string) interface{} {
	if alias == "" {
		return object
	}

	return map[string]interface{}{
		alias: object,
	}
}
