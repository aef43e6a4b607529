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

package text

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/renderer"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/fatih/structs"
	"github.com/nuclio/logger"
)

const ContentType = "text/plain; charset=utf-8"

type textSerialization struct {
	*serialization.AbstractSerialization
}

func newSerialization(parentLogger logger.Logger, configuration *serialization.Configuration) *textSerialization {
	return &textSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			configuration,
			[]string{format.Text, "txt"}),
	}
}

func (ts *textSerialization) From(object interface{}) serialization.Serializer {
	return ts.FromWithAlias(object, "")
}

// FromWithAlias returns a serializer which titles the output with the alias, if given. tabular objects
// render as tables, maps and structs as key/value tables and anything else as a single value
func (ts *textSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return &serializer{
		object: object,
		alias:  alias,
	}
}

type serializer struct {
	object interface{}
	alias  string
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	responseWriter.Header().Set(headers.ContentType, ContentType)

	textRenderer := renderer.NewRenderer(responseWriter)

	switch typedObject := s.object.(type) {
	case renderer.Tabular:
		textRenderer.RenderTabular(s.alias, typedObject)
	case map[string]interface{}:
		textRenderer.RenderAttributes(s.alias, typedObject)
	case map[string]string:
		attributes := make(map[string]interface{}, len(typedObject))
		for key, value := range typedObject {
			attributes[key] = value
		}

		textRenderer.RenderAttributes(s.alias, attributes)
	default:

		// structs render their exported fields as attributes
		if structs.IsStruct(s.object) {
			textRenderer.RenderAttributes(s.alias, structs.Map(s.object))
			return nil
		}

		return textRenderer.RenderValue(s.alias, s.object)
	}

	return nil
}
