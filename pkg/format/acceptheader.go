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

package format

import (
	"sort"
	"strings"

	"github.com/imdario/mergo"
	"github.com/munnerz/goautoneg"
	"github.com/nuclio/errors"
)

const (
	JSON     = "json"
	XML      = "xml"
	HTML     = "html"
	YAML     = "yaml"
	MsgPack  = "msgpack"
	CBOR     = "cbor"
	Protobuf = "protobuf"
	Text     = "text"
)

var builtinMediaTypes = map[string]string{
	"application/json":       JSON,
	"application/x-json":     JSON,
	"text/json":              JSON,
	"application/xml":        XML,
	"text/xml":               XML,
	"text/html":              HTML,
	"application/xhtml+xml":  HTML,
	"application/yaml":       YAML,
	"application/x-yaml":     YAML,
	"text/yaml":              YAML,
	"application/msgpack":    MsgPack,
	"application/x-msgpack":  MsgPack,
	"application/cbor":       CBOR,
	"application/protobuf":   Protobuf,
	"application/x-protobuf": Protobuf,
	"text/plain":             Text,
}

// structured syntax suffixes (e.g. application/vnd.acme+json)
var structuredSuffixes = map[string]string{
	"json": JSON,
	"xml":  XML,
	"yaml": YAML,
	"cbor": CBOR,
}

// FormatAcceptor returns whether some serialization can output the format
type FormatAcceptor func(format string) bool

// AcceptHeaderToFormat maps an Accept header to a format token
type AcceptHeaderToFormat struct {
	defaultFormat  string
	mediaTypes     map[string]string
	formatAcceptor FormatAcceptor
}

// NewAcceptHeaderToFormat creates a mapper. additionalMediaTypes are merged over the built-in mapping,
// overriding it where both define a media type
func NewAcceptHeaderToFormat(defaultFormat string,
	additionalMediaTypes map[string]string) (*AcceptHeaderToFormat, error) {
	mediaTypes := map[string]string{}

	for mediaType, format := range builtinMediaTypes {
		mediaTypes[mediaType] = format
	}

	// media types are case-insensitive
	normalizedMediaTypes := map[string]string{}
	for mediaType, format := range additionalMediaTypes {
		normalizedMediaTypes[strings.ToLower(mediaType)] = format
	}

	if err := mergo.Merge(&mediaTypes, normalizedMediaTypes, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "Failed to merge media types")
	}

	return &AcceptHeaderToFormat{
		defaultFormat: defaultFormat,
		mediaTypes:    mediaTypes,
	}, nil
}

// SetFormatAcceptor limits the media types GetFormat settles on to those whose format is accepted.
// without an acceptor, only media types with a known format are settled on
func (ahtf *AcceptHeaderToFormat) SetFormatAcceptor(formatAcceptor FormatAcceptor) {
	ahtf.formatAcceptor = formatAcceptor
}

// GetFormat returns the format of the most preferred acceptable media type in the header. an empty
// header or a wildcard yields the default format. if no media type is acceptable, the format of the
// most preferred one is returned as-is
func (ahtf *AcceptHeaderToFormat) GetFormat(acceptHeader string) string {
	if strings.TrimSpace(acceptHeader) == "" {
		return ahtf.defaultFormat
	}

	preferredFormat := ""

	// accepted media types are ordered by quality, then specificity
	for _, accept := range goautoneg.ParseAccept(acceptHeader) {
		if accept.Q <= 0 {
			continue
		}

		if accept.Type == "*" {
			return ahtf.defaultFormat
		}

		format, known := ahtf.resolveMediaType(accept.Type, accept.SubType)
		if format == "" {
			continue
		}

		if ahtf.isAcceptable(format, known) {
			return format
		}

		if preferredFormat == "" {
			preferredFormat = format
		}
	}

	if preferredFormat != "" {
		return preferredFormat
	}

	return ahtf.defaultFormat
}

// GetMediaTypes returns the media types mapped to a given format, sorted
func (ahtf *AcceptHeaderToFormat) GetMediaTypes(format string) []string {
	var mediaTypes []string

	for mediaType, mappedFormat := range ahtf.mediaTypes {
		if mappedFormat == format {
			mediaTypes = append(mediaTypes, mediaType)
		}
	}

	sort.Strings(mediaTypes)

	return mediaTypes
}

// resolveMediaType returns the format of a media type and whether it is a known one. unknown concrete
// media types resolve to their subtype
func (ahtf *AcceptHeaderToFormat) resolveMediaType(mediaType string, subType string) (string, bool) {
	if format, found := ahtf.mediaTypes[strings.ToLower(mediaType+"/"+subType)]; found {
		return format, true
	}

	if suffixIndex := strings.LastIndex(subType, "+"); suffixIndex != -1 {
		if format, found := structuredSuffixes[strings.ToLower(subType[suffixIndex+1:])]; found {
			return format, true
		}
	}

	if subType == "*" {
		return "", false
	}

	return strings.ToLower(subType), false
}

func (ahtf *AcceptHeaderToFormat) isAcceptable(format string, known bool) bool {
	if ahtf.formatAcceptor == nil {
		return known
	}

	return ahtf.formatAcceptor(format)
}
