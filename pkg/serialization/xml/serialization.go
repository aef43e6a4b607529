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

package xml

import (
	"encoding/xml"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

const ContentType = "application/xml; charset=utf-8"

type xmlSerialization struct {
	*serialization.AbstractSerialization
	configuration *Configuration
}

func newSerialization(parentLogger logger.Logger, configuration *Configuration) *xmlSerialization {
	return &xmlSerialization{
		AbstractSerialization: serialization.NewAbstractSerialization(parentLogger,
			&configuration.Configuration,
			[]string{format.XML}),
		configuration: configuration,
	}
}

func (xs *xmlSerialization) From(object interface{}) serialization.Serializer {
	return xs.FromWithAlias(object, "")
}

// FromWithAlias returns a serializer whose root element is named after the alias. without an alias
// the root element is named after the object's type
func (xs *xmlSerialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	if alias == "" {
		alias = serialization.NameFor(object)
	}

	return &serializer{
		configuration: xs.configuration,
		object:        object,
		rootName:      elementName(alias),
	}
}

type serializer struct {
	configuration *Configuration
	object        interface{}
	rootName      string
}

func (s *serializer) Serialize(responseWriter http.ResponseWriter) error {
	responseWriter.Header().Set(headers.ContentType, ContentType)

	if *s.configuration.Header {
		if _, err := io.WriteString(responseWriter, xml.Header); err != nil {
			return errors.Wrap(err, "Failed to write XML header")
		}
	}

	encoder := xml.NewEncoder(responseWriter)
	encoder.Indent("", s.configuration.Indent)

	if err := encoder.EncodeElement(&node{value: s.object},
		xml.StartElement{Name: xml.Name{Local: s.rootName}}); err != nil {
		return errors.Wrap(err, "Failed to serialize XML")
	}

	if err := encoder.Flush(); err != nil {
		return errors.Wrap(err, "Failed to flush XML")
	}

	return nil
}

// node encodes maps and slices, which encoding/xml can't encode on its own. everything else is
// delegated to encoding/xml
type node struct {
	value interface{}
}

func (n *node) MarshalXML(encoder *xml.Encoder, start xml.StartElement) error {
	value := reflect.ValueOf(n.value)

	for value.IsValid() && (value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return encodeEmpty(encoder, start)
		}

		value = value.Elem()
	}

	if !value.IsValid() {
		return encodeEmpty(encoder, start)
	}

	switch value.Kind() {
	case reflect.Map:
		return encodeMap(encoder, start, value)
	case reflect.Slice, reflect.Array:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return encoder.EncodeElement(value.Interface(), start)
		}

		return encodeSlice(encoder, start, value)
	default:
		return encoder.EncodeElement(value.Interface(), start)
	}
}

func encodeEmpty(encoder *xml.Encoder, start xml.StartElement) error {
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}

func encodeMap(encoder *xml.Encoder, start xml.StartElement, value reflect.Value) error {
	if value.Type().Key().Kind() != reflect.String {
		return errors.Errorf("Unsupported map key type: %s", value.Type().Key())
	}

	keys := value.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	for _, key := range keys {
		if err := encoder.EncodeElement(&node{value: value.MapIndex(key).Interface()},
			xml.StartElement{Name: xml.Name{Local: elementName(key.String())}}); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func encodeSlice(encoder *xml.Encoder, start xml.StartElement, value reflect.Value) error {
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	for index := 0; index < value.Len(); index++ {
		item := value.Index(index).Interface()

		if err := encoder.EncodeElement(&node{value: item},
			xml.StartElement{Name: xml.Name{Local: elementName(serialization.NameFor(item))}}); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

// elementName replaces characters that are not allowed in element names
func elementName(name string) string {
	if name == "" {
		return "_"
	}

	sanitizedName := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			return r
		}

		return '_'
	}, name)

	first := []rune(sanitizedName)[0]
	if !unicode.IsLetter(first) && first != '_' {
		sanitizedName = "_" + sanitizedName
	}

	return sanitizedName
}
