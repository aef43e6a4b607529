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

package protobuf

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	ContentType     = "application/x-protobuf"
	JSONContentType = "application/json"
)

type protobufSerialization struct {
	*serialization.AbstractSerialization
	configuration *Configuration
}

func newSerialization(parentLogger logger.Logger, configuration *Configuration) *protobufSerialization {
	return &protobufSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			&configuration.Configuration,
			[]string{format.Protobuf}),
		configuration: configuration,
	}
}

func (ps *protobufSerialization) From(object interface{}) serialization.Serializer {
	return &serializer{
		configuration: ps.configuration,
		object:        object,
	}
}

// FromWithAlias returns the same serializer as From. protobuf messages carry no name of their own
func (ps *protobufSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return ps.From(object)
}

type serializer struct {
	configuration *Configuration
	object        interface{}
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	var body []byte
	var err error

	message, isMessage := s.object.(proto.Message)
	if !isMessage {
		responseWriter.WriteHeader(http.StatusNotAcceptable)
		return errors.Errorf("Object does not implement proto.Message: %T", s.object)
	}

	if s.configuration.JSON {
		responseWriter.Header().Set(headers.ContentType, JSONContentType)
		body, err = protojson.Marshal(message)
	} else {
		responseWriter.Header().Set(headers.ContentType, ContentType)
		body, err = proto.MarshalOptions{Deterministic: true}.Marshal(message)
	}

	if err != nil {
		return errors.Wrap(err, "Failed to serialize protobuf")
	}

	if _, err := responseWriter.Write(body); err != nil {
		return errors.Wrap(err, "Failed to write protobuf")
	}

	return nil
}
