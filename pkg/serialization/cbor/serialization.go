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

package cbor

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"

	cbor "github.com/fxamacker/cbor/v2"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

const ContentType = "application/cbor"

type cborSerialization struct {
	*serialization.AbstractSerialization
	encMode cbor.EncMode
}

func newSerialization(parentLogger logger.Logger, configuration *Configuration) (*cborSerialization, error) {
	var err error

	newCBORSerialization := &cborSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			&configuration.Configuration,
			[]string{format.CBOR}),
	}

	encOptions := cbor.EncOptions{}
	if *configuration.Canonical {
		encOptions = cbor.CanonicalEncOptions()
	}

	newCBORSerialization.encMode, err = encOptions.EncMode()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create encoding mode")
	}

	return newCBORSerialization, nil
}

func (cs *cborSerialization) From(object interface{}) serialization.Serializer {
	return cs.FromWithAlias(object, "")
}

func (cs *cborSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return &serializer{
		encMode: cs.encMode,
		object:  object,
		alias:   alias,
	}
}

type serializer struct {
	encMode cbor.EncMode
	object  interface{}
	alias   string
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	responseWriter.Header().Set(headers.ContentType, ContentType)

	if err := s.encMode.NewEncoder(responseWriter).Encode(serialization.WrapWithAlias(s.object,
		s.alias)); err != nil {
		return errors.Wrap(err, "Failed to serialize CBOR")
	}

	return nil
}
