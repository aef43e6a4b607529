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

import (
	"net/http"
	"strings"

	"github.com/nuclio/representation/pkg/common/headers"
)

// RequestResolver resolves the format requested by an HTTP request. An explicit format query parameter
// wins over the format header, which wins over the Accept header
type RequestResolver struct {
	request              *http.Request
	formatParameter      string
	acceptHeaderToFormat *AcceptHeaderToFormat
}

func NewRequestResolver(request *http.Request,
	formatParameter string,
	acceptHeaderToFormat *AcceptHeaderToFormat) *RequestResolver {
	return &RequestResolver{
		request:              request,
		formatParameter:      formatParameter,
		acceptHeaderToFormat: acceptHeaderToFormat,
	}
}

func (rr *RequestResolver) GetAcceptFormat() string {
	if rr.formatParameter != "" {
		if requestedFormat := rr.request.URL.Query().Get(rr.formatParameter); requestedFormat != "" {
			return strings.ToLower(requestedFormat)
		}
	}

	if requestedFormat := rr.request.Header.Get(headers.Format); requestedFormat != "" {
		return strings.ToLower(requestedFormat)
	}

	return rr.acceptHeaderToFormat.GetFormat(rr.request.Header.Get(headers.Accept))
}
