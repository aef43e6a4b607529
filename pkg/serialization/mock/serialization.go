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

package mock

import (
	"net/http"

	"github.com/nuclio/representation/pkg/serialization"

	"github.com/stretchr/testify/mock"
)

// Serialization is a mock serialization candidate
type Serialization struct {
	mock.Mock
}

func (ms *Serialization) Accepts(format string) bool {
	args := ms.Called(format)
	return args.Bool(0)
}

func (ms *Serialization) From(object interface{}) serialization.Serializer {
	args := ms.Called(object)
	return args.Get(0).(serialization.Serializer)
}

func (ms *Serialization) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	args := ms.Called(object, alias)
	return args.Get(0).(serialization.Serializer)
}

// Serializer is a mock serializer
type Serializer struct {
	mock.Mock
}

func (ms *Serializer) Serialize(responseWriter http.ResponseWriter) error {
	args := ms.Called(responseWriter)
	return args.Error(0)
}
