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
	"github.com/nuclio/representation/pkg/page"
	"github.com/nuclio/representation/pkg/representationconfig"
)

type Configuration struct {
	representationconfig.Serialization
	Kind string

	// renders the default page, for serializations that output pages
	PageProvider page.Provider
}

func NewConfiguration(kind string,
	serializationConfiguration *representationconfig.Serialization,
	pageProvider page.Provider) *Configuration {

	configuration := &Configuration{
		Kind:         kind,
		PageProvider: pageProvider,
	}

	if serializationConfiguration != nil {
		configuration.Serialization = *serializationConfiguration
	}

	// set defaults
	if configuration.Namespace == "" {
		configuration.Namespace = BundledNamespace
	}

	return configuration
}
