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
	"sort"
	"strings"
)

// ApplicationNamespaceFirst orders candidates declared in the application namespace (or any namespace
// nested in it) before all other candidates
type ApplicationNamespaceFirst struct {
	Namespace string
}

// Less reports whether a must be tried before b
func (anf *ApplicationNamespaceFirst) Less(a *Candidate, b *Candidate) bool {
	return anf.priority(a) < anf.priority(b)
}

// InNamespace returns whether a namespace is the application namespace, or nested in it
func (anf *ApplicationNamespaceFirst) InNamespace(namespace string) bool {
	if anf.Namespace == "" {
		return false
	}

	return namespace == anf.Namespace || strings.HasPrefix(namespace, anf.Namespace+"/")
}

func (anf *ApplicationNamespaceFirst) priority(candidate *Candidate) int {
	if anf.InNamespace(candidate.Namespace) {
		return 0
	}

	return 1
}

// SortCandidates returns a copy of candidates in which application candidates come first. relative order
// within application and non-application candidates is preserved. the given slice is not modified
func SortCandidates(candidates []*Candidate, applicationNamespace string) []*Candidate {
	comparator := &ApplicationNamespaceFirst{Namespace: applicationNamespace}

	sortedCandidates := make([]*Candidate, len(candidates))
	copy(sortedCandidates, candidates)

	sort.SliceStable(sortedCandidates, func(i, j int) bool {
		return comparator.Less(sortedCandidates[i], sortedCandidates[j])
	})

	return sortedCandidates
}
