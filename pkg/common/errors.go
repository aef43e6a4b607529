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

package common

import (
	"net/http"

	"github.com/nuclio/errors"
	"github.com/nuclio/nuclio-sdk-go"
)

// ResolveErrorStatusCodeOrDefault returns the status code of the outermost error in the cause chain that
// carries one. errors without any status code resolve to 500, nil errors to the given default
func ResolveErrorStatusCodeOrDefault(err error, defaultStatusCode int) int {
	if err == nil {
		return defaultStatusCode
	}

	for cause := err; cause != nil; {
		if errWithStatus, ok := cause.(*nuclio.ErrorWithStatusCode); ok {
			return errWithStatus.StatusCode()
		}

		// Cause returns the error itself once the chain ends
		next := errors.Cause(cause)
		if next == cause {
			break
		}
		cause = next
	}

	// unable to resolve
	return http.StatusInternalServerError
}
