//go:build test_unit

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
	"math/rand"
	"net/http"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type namedSerialization struct {
	name string
}

func (ns *namedSerialization) Accepts(format string) bool {
	return format == ns.name
}

func (ns *namedSerialization) From(object interface{}) Serializer {
	return &IgnoringSerializer{}
}

func (ns *namedSerialization) FromWithAlias(object interface{}, alias string) Serializer {
	return &IgnoringSerializer{}
}

type PriorityTestSuite struct {
	suite.Suite
}

func (suite *PriorityTestSuite) TestApplicationCandidatesFirst() {
	dumb := NewCandidate("dumb", "app/serializations", &namedSerialization{"dumb"})
	xml := NewCandidate("xml", BundledNamespace, &namedSerialization{"xml"})
	json := NewCandidate("json", BundledNamespace, &namedSerialization{"json"})
	html := NewCandidate("html", BundledNamespace, &namedSerialization{"html"})

	for _, testCase := range []struct {
		name       string
		candidates []*Candidate
		expected   []*Candidate
	}{
		{
			name:       "ApplicationCandidateFirst",
			candidates: []*Candidate{dumb, xml, json, html},
			expected:   []*Candidate{dumb, xml, json, html},
		},
		{
			name:       "ApplicationCandidateLast",
			candidates: []*Candidate{xml, json, html, dumb},
			expected:   []*Candidate{dumb, xml, json, html},
		},
		{
			name:       "ApplicationCandidateInTheMiddle",
			candidates: []*Candidate{json, dumb, html, xml},
			expected:   []*Candidate{dumb, json, html, xml},
		},
	} {
		suite.Run(testCase.name, func() {
			sortedCandidates := SortCandidates(testCase.candidates, "app")
			suite.Require().Equal("app/serializations", sortedCandidates[0].Namespace)
			suite.Require().Equal(testCase.expected, sortedCandidates)
		})
	}
}

func (suite *PriorityTestSuite) TestNoApplicationCandidatesKeepsOrder() {
	bundledJSON := NewCandidate("json", BundledNamespace, &namedSerialization{"json"})
	bundledXML := NewCandidate("xml", BundledNamespace, &namedSerialization{"xml"})

	sortedCandidates := SortCandidates([]*Candidate{bundledJSON, bundledXML}, "app")
	suite.Require().Equal([]*Candidate{bundledJSON, bundledXML}, sortedCandidates)
}

func (suite *PriorityTestSuite) TestStable() {
	var candidates []*Candidate
	for index := 0; index < 50; index++ {
		namespace := BundledNamespace
		if index%3 == 0 {
			namespace = "app/serializations"
		}

		candidates = append(candidates, NewCandidate("kind", namespace, &namedSerialization{"format"}))
	}

	rand.New(rand.NewSource(42)).Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	original := make([]*Candidate, len(candidates))
	copy(original, candidates)

	comparator := &ApplicationNamespaceFirst{Namespace: "app"}
	isApplicationCandidate := func(candidate *Candidate, _ int) bool {
		return comparator.InNamespace(candidate.Namespace)
	}

	sortedCandidates := SortCandidates(candidates, "app")

	// input untouched
	suite.Require().Equal(original, candidates)

	// application candidates first, each group in its original relative order
	expected := append(lo.Filter(original, isApplicationCandidate), lo.Reject(original, isApplicationCandidate)...)
	suite.Require().Equal(expected, sortedCandidates)
}

func (suite *PriorityTestSuite) TestInNamespace() {
	comparator := &ApplicationNamespaceFirst{Namespace: "app"}

	for _, testCase := range []struct {
		name      string
		namespace string
		expected  bool
	}{
		{name: "Equal", namespace: "app", expected: true},
		{name: "Nested", namespace: "app/serializations", expected: true},
		{name: "SharedPrefix", namespace: "application", expected: false},
		{name: "Bundled", namespace: BundledNamespace, expected: false},
		{name: "Empty", namespace: "", expected: false},
	} {
		suite.Run(testCase.name, func() {
			suite.Require().Equal(testCase.expected, comparator.InNamespace(testCase.namespace))
		})
	}

	suite.Require().False((&ApplicationNamespaceFirst{}).InNamespace(""))
}

func (suite *PriorityTestSuite) TestLessIsPreorder() {
	comparator := &ApplicationNamespaceFirst{Namespace: "app"}
	application := NewCandidate("a", "app", &namedSerialization{"a"})
	otherApplication := NewCandidate("b", "app/nested", &namedSerialization{"b"})
	bundled := NewCandidate("c", BundledNamespace, &namedSerialization{"c"})

	suite.Require().True(comparator.Less(application, bundled))
	suite.Require().False(comparator.Less(bundled, application))
	suite.Require().False(comparator.Less(application, otherApplication))
	suite.Require().False(comparator.Less(otherApplication, application))
	suite.Require().False(comparator.Less(bundled, bundled))
}

type NamingTestSuite struct {
	suite.Suite
}

type Order struct {
	ID int
}

type orderLines []Order

func (suite *NamingTestSuite) TestNameFor() {
	for _, testCase := range []struct {
		name     string
		object   interface{}
		expected string
	}{
		{name: "Struct", object: Order{}, expected: "order"},
		{name: "Pointer", object: &Order{}, expected: "order"},
		{name: "Slice", object: []Order{}, expected: "orderList"},
		{name: "SliceOfPointers", object: []*Order{}, expected: "orderList"},
		{name: "NamedSlice", object: orderLines{}, expected: "orderLines"},
		{name: "Map", object: map[string]interface{}{}, expected: "map"},
		{name: "String", object: "text", expected: "string"},
		{name: "Nil", object: nil, expected: "null"},
		{name: "NamedMap", object: http.Header{}, expected: "header"},
	} {
		suite.Run(testCase.name, func() {
			suite.Require().Equal(testCase.expected, NameFor(testCase.object))
		})
	}
}

func (suite *NamingTestSuite) TestWrapWithAlias() {
	suite.Require().Equal(3, WrapWithAlias(3, ""))
	suite.Require().Equal(map[string]interface{}{"count": 3}, WrapWithAlias(3, "count"))
}

func TestPriorityTestSuite(t *testing.T) {
	suite.Run(t, new(PriorityTestSuite))
}

func TestNamingTestSuite(t *testing.T) {
	suite.Run(t, new(NamingTestSuite))
}
