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

	"github.com/nuclio/representation/pkg/page"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock page provider
type Provider struct {
	mock.Mock
}

func (mp *Provider) NewResult(responseWriter http.ResponseWriter) page.Result {
	args := mp.Called(responseWriter)
	return args.Get(0).(page.Result)
}

// Result is a mock page result
type Result struct {
	mock.Mock
}

func (mr *Result) Include(key string, value interface{}) {
	mr.Called(key, value)
}

func (mr *Result) DefaultView() error {
	args := mr.Called()
	return args.Error(0)
}
