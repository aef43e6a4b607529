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
	"net/http"
)

// BundledNamespace is the namespace of the serializations shipped with this module
const BundledNamespace = "github.com/nuclio/representation"

// Serializer outputs a single object. it is created per object and invoked once
type Serializer interface {

	// Serialize writes the object to the response
	Serialize(responseWriter http.ResponseWriter) error
}

// IgnoringSerializer doesn't output anything
type IgnoringSerializer struct{}

func (is *IgnoringSerializer) Serialize(responseWriter http.ResponseWriter) error {
	return nil
}

// Serialization is a candidate for rendering objects in one or more formats
type Serialization interface {

	// Accepts returns whether this serialization can output the given format
	Accepts(format string) bool

	// From returns a serializer for the object
	From(object interface{}) Serializer

	// FromWithAlias returns a serializer for the object. the alias is used by serializations which name
	// their output (e.g. the root element of an XML document)
	FromWithAlias(object interface{}, alias string) Serializer
}

// FormatLister is implemented by serializations which can enumerate the formats they accept
type FormatLister interface {
	GetFormats() []string
}

// Candidate is a serialization, along with the namespace it was declared in when registered
type Candidate struct {
	Kind          string
	Namespace     string
	Serialization Serialization
}

func NewCandidate(kind string, namespace string, serialization Serialization) *Candidate {
	return &Candidate{
		Kind:          kind,
		Namespace:     namespace,
		Serialization: serialization,
	}
}

// GetFormats returns the formats the candidate accepts, if the serialization can enumerate them
func (c *Candidate) GetFormats() []string {
	if formatLister, ok := c.Serialization.(FormatLister); ok {
		return formatLister.GetFormats()
	}

	return nil
}
