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

package headers

import "strings"

const (
	HeaderPrefix = "X-Nuclio"

	// Standard headers
	Accept      = "Accept"
	ContentType = "Content-Type"
	RequestID   = "X-Request-Id"

	// Representation headers
	Format         = "X-Nuclio-Format"
	Representation = "X-Nuclio-Representation"

	// Others
	IguazioContext = "Igz-Ctx"
)

func IsNuclioHeader(headerName string) bool {
	return strings.HasPrefix(headerName, HeaderPrefix)
}
