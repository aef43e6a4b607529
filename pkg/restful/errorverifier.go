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
	"encoding/json"
	"strings"

	"github.com/nuclio/logger"
)

// ErrorResponseVerifier verifies JSON represented error responses
type ErrorResponseVerifier struct {
	logger             logger.Logger
	expectedStatusCode int
	expectedStrings    []string
}

// NewErrorResponseVerifier returns a new ErrorResponseVerifier
func NewErrorResponseVerifier(logger logger.Logger,
	expectedStatusCode int,
	expectedStrings []string) *ErrorResponseVerifier {
	return &ErrorResponseVerifier{
		logger:             logger,
		expectedStatusCode: expectedStatusCode,
		expectedStrings:    expectedStrings,
	}
}

// Verify verifies that the body is an error response with the expected status code, whose error
// contains all expected strings
func (erv *ErrorResponseVerifier) Verify(body []byte) bool {
	errorResponse := ErrorResponse{}

	if err := json.Unmarshal(body, &errorResponse); err != nil {
		erv.logger.WarnWith("Response is not an error response", "body", string(body), "err", err.Error())

		return false
	}

	if errorResponse.StatusCode != erv.expectedStatusCode {
		erv.logger.WarnWith("Unexpected status code",
			"statusCode", errorResponse.StatusCode,
			"expected", erv.expectedStatusCode)

		return false
	}

	// iterate over expected strings, look for them
	for _, expectedString := range erv.expectedStrings {
		if !strings.Contains(errorResponse.Error, expectedString) {
			erv.logger.WarnWith("Expected string not found",
				"error", errorResponse.Error,
				"expected", expectedString)
			return false
		}
	}

	return true
}
