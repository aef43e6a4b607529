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

package json

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/renderer"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

const ContentType = "application/json"

type jsonSerialization struct {
	*serialization.AbstractSerialization
	configuration *Configuration
}

func newSerialization(parentLogger logger.Logger, configuration *Configuration) *jsonSerialization {
	return &jsonSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			&configuration.Configuration,
			[]string{format.JSON}),
		configuration: configuration,
	}
}

func (js *jsonSerialization) From(object interface{}) serialization.Serializer {
	return js.FromWithAlias(object, "")
}

// FromWithAlias returns a serializer which nests the object under the alias, if given
func (js *jsonSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return &serializer{
		configuration: js.configuration,
		object:        object,
		alias:         alias,
	}
}

type serializer struct {
	configuration *Configuration
	object        interface{}
	alias         string
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	responseWriter.Header().Set(headers.ContentType, ContentType)

	if err := renderer.NewRenderer(responseWriter).RenderJSON(serialization.WrapWithAlias(s.object, s.alias),
		s.configuration.Indent,
		*s.configuration.EscapeHTML); err != nil {
		return errors.Wrap(err, "Failed to serialize JSON")
	}

	return nil
}
