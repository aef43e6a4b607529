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
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/mitchellh/mapstructure"
	"github.com/nuclio/errors"
)

type Configuration struct {
	serialization.Configuration

	// name struct fields after their json tags, so that objects look the same as in JSON
	UseJSONTag *bool
}

func NewConfiguration(configuration *serialization.Configuration) (*Configuration, error) {
	newConfiguration := Configuration{
		Configuration: *configuration,
	}

	// parse attributes
	if err := mapstructure.Decode(newConfiguration.Configuration.Attributes, &newConfiguration); err != nil {
		return nil, errors.Wrap(err, "Failed to decode attributes")
	}

	if newConfiguration.UseJSONTag == nil {
		useJSONTag := true
		newConfiguration.UseJSONTag = &useJSONTag
	}

	return &newConfiguration, nil
}
