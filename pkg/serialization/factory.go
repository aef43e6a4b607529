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

package serialization

import (
	"github.com/nuclio/representation/pkg/page"
	"github.com/nuclio/representation/pkg/representationconfig"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

// CreateCandidates creates a candidate for every enabled serialization kind in registration order, appends
// the application's own candidates and returns them all in priority order
func CreateCandidates(parentLogger logger.Logger,
	configuration *representationconfig.Config,
	pageProvider page.Provider,
	applicationCandidates ...*Candidate) ([]*Candidate, error) {
	var candidates []*Candidate

	for _, kind := range RegistrySingleton.GetKinds() {
		serializationConfiguration := configuration.GetSerialization(kind)

		if !serializationConfiguration.IsEnabled() {
			parentLogger.DebugWith("Serialization disabled, skipping", "kind", kind)
			continue
		}

		kindConfiguration := NewConfiguration(kind, serializationConfiguration, pageProvider)

		serialization, err := RegistrySingleton.NewSerialization(parentLogger, kind, kindConfiguration)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to create serialization: %s", kind)
		}

		candidates = append(candidates, NewCandidate(kind, kindConfiguration.Namespace, serialization))
	}

	candidates = append(candidates, applicationCandidates...)

	sortedCandidates := SortCandidates(candidates, configuration.Representation.ApplicationNamespace)

	for priority, candidate := range sortedCandidates {
		parentLogger.DebugWith("Serialization candidate",
			"priority", priority,
			"kind", candidate.Kind,
			"namespace", candidate.Namespace)
	}

	return sortedCandidates, nil
}
