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

package representation

import (
	"github.com/nuclio/representation/pkg/common"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"
	"github.com/nuclio/representation/pkg/status"

	"github.com/nuclio/logger"
)

type Outcome string

const (
	OutcomeSerialized        Outcome = "serialized"
	OutcomeNotFound          Outcome = "notFound"
	OutcomeNotAcceptable     Outcome = "notAcceptable"
	OutcomeUnsupportedFormat Outcome = "unsupportedFormat"
)

// Decision describes how an object was dispatched
type Decision struct {
	Format     string
	Kind       string
	Outcome    Outcome
	Serializer serialization.Serializer
}

// Result chooses the serializer of an object by the format the client asked for
type Result interface {

	// From returns the serializer of the object
	From(object interface{}) serialization.Serializer

	// FromWithAlias returns the serializer of the object, passing the alias to the chosen serialization
	FromWithAlias(object interface{}, alias string) serialization.Serializer
}

// DefaultResult dispatches to the first candidate accepting the requested format. when no format was
// requested, status is signaled instead (not found for absent objects, not acceptable otherwise)
type DefaultResult struct {
	logger         logger.Logger
	formatResolver format.Resolver
	status         status.Status
	candidates     []*serialization.Candidate
}

// NewDefaultResult creates a result. candidates are expected in priority order
// (see serialization.SortCandidates) and are never modified
func NewDefaultResult(parentLogger logger.Logger,
	formatResolver format.Resolver,
	status status.Status,
	candidates []*serialization.Candidate) *DefaultResult {
	return &DefaultResult{
		logger:         parentLogger,
		formatResolver: formatResolver,
		status:         status,
		candidates:     candidates,
	}
}

func (dr *DefaultResult) From(object interface{}) serialization.Serializer {
	return dr.Dispatch(object).Serializer
}

func (dr *DefaultResult) FromWithAlias(object interface{}, alias string) serialization.Serializer {
	return dr.DispatchWithAlias(object, alias).Serializer
}

// Dispatch chooses the serializer of the object, same as From, and reports the decision
func (dr *DefaultResult) Dispatch(object interface{}) *Decision {
	return dr.dispatch(object, "", false)
}

// DispatchWithAlias chooses the serializer of the object, same as FromWithAlias, and reports the decision
func (dr *DefaultResult) DispatchWithAlias(object interface{}, alias string) *Decision {
	return dr.dispatch(object, alias, true)
}

func (dr *DefaultResult) dispatch(object interface{}, alias string, withAlias bool) *Decision {
	requestedFormat := dr.formatResolver.GetAcceptFormat()

	if requestedFormat == "" {
		decision := &Decision{
			Serializer: &serialization.IgnoringSerializer{},
		}

		if common.IsNil(object) {
			dr.status.NotFound()
			decision.Outcome = OutcomeNotFound
		} else {
			dr.status.NotAcceptable()
			decision.Outcome = OutcomeNotAcceptable
		}

		dr.logger.DebugWith("No format requested", "outcome", decision.Outcome)

		return decision
	}

	for _, candidate := range dr.candidates {
		if !candidate.Serialization.Accepts(requestedFormat) {
			continue
		}

		decision := &Decision{
			Format:  requestedFormat,
			Kind:    candidate.Kind,
			Outcome: OutcomeSerialized,
		}

		if withAlias {
			decision.Serializer = candidate.Serialization.FromWithAlias(object, alias)
		} else {
			decision.Serializer = candidate.Serialization.From(object)
		}

		dr.logger.DebugWith("Dispatched",
			"format", requestedFormat,
			"kind", candidate.Kind,
			"namespace", candidate.Namespace)

		return decision
	}

	// no status is signaled, the response is left as is
	dr.logger.DebugWith("No serialization accepts format", "format", requestedFormat)

	return &Decision{
		Format:     requestedFormat,
		Outcome:    OutcomeUnsupportedFormat,
		Serializer: &serialization.IgnoringSerializer{},
	}
}
