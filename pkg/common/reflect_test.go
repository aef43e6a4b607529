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

package common

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReflectTestSuite struct {
	suite.Suite
}

func (suite *ReflectTestSuite) TestIsNil() {
	var nilPointer *struct{}
	var nilMap map[string]interface{}
	var nilSlice []string
	var nilInterface interface{}

	for _, testCase := range []struct {
		name     string
		object   interface{}
		expected bool
	}{
		{name: "untyped", object: nil, expected: true},
		{name: "nilInterface", object: nilInterface, expected: true},
		{name: "nilPointer", object: nilPointer, expected: true},
		{name: "nilMap", object: nilMap, expected: true},
		{name: "nilSlice", object: nilSlice, expected: true},
		{name: "emptySlice", object: []string{}, expected: false},
		{name: "zeroInt", object: 0, expected: false},
		{name: "emptyString", object: "", expected: false},
		{name: "struct", object: struct{}{}, expected: false},
		{name: "pointer", object: &struct{}{}, expected: false},
	} {
		suite.Run(testCase.name, func() {
			suite.Require().Equal(testCase.expected, IsNil(testCase.object))
		})
	}
}

func TestReflectTestSuite(t *testing.T) {
	suite.Run(t, new(ReflectTestSuite))
}
