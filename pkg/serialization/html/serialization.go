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

package html

import (
	"net/http"

	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/page"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

type htmlSerialization struct {
	*serialization.AbstractSerialization
	pageProvider page.Provider
}

func newSerialization(parentLogger logger.Logger, configuration *serialization.Configuration) *htmlSerialization {
	return &htmlSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			configuration,
			[]string{format.HTML}),
		pageProvider: configuration.PageProvider,
	}
}

func (hs *htmlSerialization) From(object interface{}) serialization.Serializer {
	return hs.FromWithAlias(object, "")
}

// FromWithAlias returns a serializer which includes the object in the default page under the alias. without
// an alias the object is included under the name of its type
func (hs *htmlSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	if alias == "" {
		alias = serialization.NameFor(object)
	}

	return &serializer{
		pageProvider: hs.pageProvider,
		object:       object,
		alias:        alias,
	}
}

type serializer struct {
	pageProvider page.Provider
	object       interface{}
	alias        string
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	pageResult := s.pageProvider.NewResult(responseWriter)
	pageResult.Include(s.alias, s.object)

	if err := pageResult.DefaultView(); err != nil {
		return errors.Wrap(err, "Failed to render default page")
	}

	return nil
}
