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
	"github.com/nuclio/representation/pkg/registry"

	"github.com/nuclio/logger"
)

// Creator creates a serialization instance
type Creator interface {

	// Create creates a serialization instance
	Create(logger.Logger, *Configuration) (Serialization, error)
}

type Registry struct {
	registry.Registry
}

// RegistrySingleton is a serialization global singleton
var RegistrySingleton = Registry{
	Registry: *registry.NewRegistry("serialization"),
}

func (r *Registry) NewSerialization(parentLogger logger.Logger,
	kind string,
	configuration *Configuration) (Serialization, error) {

	registree, err := r.Get(kind)
	if err != nil {
		return nil, err
	}

	configuration.Kind = kind

	return registree.(Creator).Create(parentLogger, configuration)
}
