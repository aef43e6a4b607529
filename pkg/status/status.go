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

package status

import (
	"net/http"

	"github.com/nuclio/logger"
)

// Status signals the outcome of a request that could not be rendered
type Status interface {

	// NotFound signals that there was nothing to render
	NotFound()

	// NotAcceptable signals that the requested representation can't be produced
	NotAcceptable()
}

// HTTPStatus writes signaled statuses to a response writer. only the first status is written
type HTTPStatus struct {
	logger         logger.Logger
	responseWriter http.ResponseWriter
	statusCode     int
}

func NewHTTPStatus(parentLogger logger.Logger, responseWriter http.ResponseWriter) *HTTPStatus {
	return &HTTPStatus{
		logger:         parentLogger.GetChild("status"),
		responseWriter: responseWriter,
	}
}

func (hs *HTTPStatus) NotFound() {
	hs.writeStatusCode(http.StatusNotFound)
}

func (hs *HTTPStatus) NotAcceptable() {
	hs.writeStatusCode(http.StatusNotAcceptable)
}

// GetStatusCode returns the status code written, or 0 if none was signaled
func (hs *HTTPStatus) GetStatusCode() int {
	return hs.statusCode
}

func (hs *HTTPStatus) writeStatusCode(statusCode int) {
	if hs.statusCode != 0 {
		hs.logger.DebugWith("Status already written, ignoring",
			"written", hs.statusCode,
			"ignored", statusCode)
		return
	}

	hs.statusCode = statusCode
	hs.responseWriter.WriteHeader(statusCode)
}
