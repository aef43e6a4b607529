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

package restful

import (
	"net/http"
)

// responseWriter holds back the status line until the body is first written, so that serializers
// can still set headers. the first status code set wins
type responseWriter struct {
	http.ResponseWriter
	defaultStatusCode int
	statusCode        int
	headerWritten     bool
}

func newResponseWriter(wrapped http.ResponseWriter, defaultStatusCode int) *responseWriter {
	return &responseWriter{
		ResponseWriter:    wrapped,
		defaultStatusCode: defaultStatusCode,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.statusCode == 0 {
		rw.statusCode = statusCode
	}
}

func (rw *responseWriter) Write(body []byte) (int, error) {
	rw.flushHeader()

	return rw.ResponseWriter.Write(body)
}

// GetStatusCode returns the status code that was or will be written
func (rw *responseWriter) GetStatusCode() int {
	if rw.statusCode == 0 {
		return rw.defaultStatusCode
	}

	return rw.statusCode
}

func (rw *responseWriter) flushHeader() {
	if rw.headerWritten {
		return
	}

	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(rw.GetStatusCode())
}
