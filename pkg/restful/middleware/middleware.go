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

package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nuclio/representation/pkg/common/headers"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nuclio/logger"
	"github.com/rs/xid"
)

// RequestIDKey is the key under which the request ID is stored for nuclio loggers
const RequestIDKey = "requestID"

// textual content types have their body logged. other bodies are binary
var loggedContentTypes = []string{
	"application/json",
	"application/xml",
	"application/yaml",
	"text/",
}

// RequestID is a middleware that injects a request ID into the context of each request and echoes it
// in the response. It first tries to use an Iguazio context ID, then a request ID sent by the client,
// and generates one otherwise
func RequestID(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headers.IguazioContext)
		if requestID == "" {
			requestID = r.Header.Get(headers.RequestID)
		}

		if requestID == "" {
			requestID = xid.New().String()
		}

		w.Header().Set(headers.RequestID, requestID)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// AlignRequestIDKeyToLogger transform server framework request ID to Nuclio's logger context value for
// a unique request ID
func AlignRequestIDKeyToLogger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if requestID := ctx.Value(middleware.RequestIDKey); requestID != nil {
			ctx = context.WithValue(ctx, RequestIDKey, requestID) // nolint: staticcheck
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// RequestResponseLogger logs handled requests
func RequestResponseLogger(logger logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, request *http.Request) {
			responseBodyBuffer := bytes.Buffer{}

			// create a response wrapper so we can access stuff
			responseWrapper := middleware.NewWrapResponseWriter(w, request.ProtoMajor)
			responseWrapper.Tee(&responseBodyBuffer)

			// take start time
			requestStartTime := time.Now()

			// get request body
			requestBody, _ := io.ReadAll(request.Body)

			// restore body for further processing
			request.Body = io.NopCloser(bytes.NewBuffer(requestBody))

			// when request processing is done, log the request / response
			defer func() {
				logVars := []interface{}{
					"requestID", middleware.GetReqID(request.Context()),
					"requestMethod", request.Method,
					"requestPath", request.URL,
					"requestHeaders", request.Header,
					"requestBody", string(requestBody),
					"responseStatus", responseWrapper.Status(),
					"responseContentType", responseWrapper.Header().Get(headers.ContentType),
					"responseTime", time.Since(requestStartTime),
				}

				if isLoggedContentType(responseWrapper.Header().Get(headers.ContentType)) {
					logVars = append(logVars, "responseBody", responseBodyBuffer.String())
				} else {
					logVars = append(logVars, "responseBodyLength", responseBodyBuffer.Len())
				}

				logger.DebugWith("Handled request", logVars...)
			}()

			// call next middleware
			next.ServeHTTP(responseWrapper, request)
		}

		return http.HandlerFunc(fn)
	}
}

func isLoggedContentType(contentType string) bool {
	for _, loggedContentType := range loggedContentTypes {
		if strings.HasPrefix(contentType, loggedContentType) {
			return true
		}
	}

	return false
}
