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

// Resolver answers which output format the client requested
type Resolver interface {

	// GetAcceptFormat returns the requested format token (e.g. "json", "xml"), or an empty
	// string if no format was requested
	GetAcceptFormat() string
}

// StaticResolver always resolves to the same format
type StaticResolver struct {
	format string
}

func NewStaticResolver(format string) *StaticResolver {
	return &StaticResolver{format: format}
}

func (sr *StaticResolver) GetAcceptFormat() string {
	return sr.format
}
