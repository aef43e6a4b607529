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

package msgpack

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/vmihailenco/msgpack/v4"
)

const ContentType = "application/msgpack"

type msgpackSerialization struct {
	*serialization.AbstractSerialization
	configuration *Configuration
}

func newSerialization(parentLogger logger.Logger, configuration *Configuration) *msgpackSerialization {
	return &msgpackSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			&configuration.Configuration,
			[]string{format.MsgPack}),
		configuration: configuration,
	}
}

func (ms *msgpackSerialization) From(object interface{}) serialization.Serializer {
	return ms.FromWithAlias(object, "")
}

func (ms *msgpackSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return &serializer{
		configuration: ms.configuration,
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

	encoder := msgpack.NewEncoder(responseWriter).
		SortMapKeys(true).
		UseJSONTag(*s.configuration.UseJSONTag)

	if err := encoder.Encode(serialization.WrapWithAlias(s.object, s.alias)); err != nil {
		return errors.Wrap(err, "Failed to serialize msgpack")
	}

	return nil
}
