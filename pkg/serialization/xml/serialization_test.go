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

package xml

import (
	"net/http/httptest"
	"testing"

	"github.com/nuclio/representation/pkg/representationconfig"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
)

type Order struct {
	ID    int    `xml:"id"`
	Title string `xml:"title"`
}

type SerializationTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (suite *SerializationTestSuite) SetupSuite() {
	var err error

	suite.logger, err = nucliozap.NewNuclioZapTest("test")
	suite.Require().NoError(err)
}

func (suite *SerializationTestSuite) TestAccepts() {
	xmlSerialization := suite.createSerialization(nil)

	suite.Require().True(xmlSerialization.Accepts("xml"))
	suite.Require().False(xmlSerialization.Accepts("json"))
}

func (suite *SerializationTestSuite) TestHeader() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(nil).From(&Order{ID: 1, Title: "first"}).Serialize(responseRecorder)
	suite.Require().NoError(err)

	suite.Require().Equal(ContentType, responseRecorder.Header().Get("Content-Type"))
	suite.Require().Equal(`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		`<order><id>1</id><title>first</title></order>`,
		responseRecorder.Body.String())
}

func (suite *SerializationTestSuite) TestRootElement() {
	for _, testCase := range []struct {
		name     string
		object   interface{}
		alias    string
		expected string
	}{
		{
			name:     "StructByType",
			object:   Order{ID: 1, Title: "first"},
			expected: `<order><id>1</id><title>first</title></order>`,
		},
		{
			name:     "StructByAlias",
			object:   &Order{ID: 1, Title: "first"},
			alias:    "purchase",
			expected: `<purchase><id>1</id><title>first</title></purchase>`,
		},
		{
			name:     "Slice",
			object:   []Order{{ID: 1}, {ID: 2}},
			expected: `<orderList><order><id>1</id><title></title></order><order><id>2</id><title></title></order></orderList>`,
		},
		{
			name:     "Map",
			object:   map[string]interface{}{"zeta": 1, "alpha": "a<b"},
			alias:    "attributes",
			expected: `<attributes><alpha>a&lt;b</alpha><zeta>1</zeta></attributes>`,
		},
		{
			name:     "NestedMap",
			object:   map[string]interface{}{"inner": map[string]int{"count": 2}, "list": []string{"x"}},
			alias:    "outer",
			expected: `<outer><inner><count>2</count></inner><list><string>x</string></list></outer>`,
		},
		{
			name:     "InvalidKeys",
			object:   map[string]string{"1st": "a", "with space": "b"},
			alias:    "my alias",
			expected: `<my_alias><_1st>a</_1st><with_space>b</with_space></my_alias>`,
		},
		{
			name:     "NilPointer",
			object:   (*Order)(nil),
			expected: `<order></order>`,
		},
	} {
		suite.Run(testCase.name, func() {
			responseRecorder := httptest.NewRecorder()

			err := suite.createSerialization(map[string]interface{}{"header": false}).
				FromWithAlias(testCase.object, testCase.alias).
				Serialize(responseRecorder)
			suite.Require().NoError(err)
			suite.Require().Equal(testCase.expected, responseRecorder.Body.String())
		})
	}
}

func (suite *SerializationTestSuite) TestIndent() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(map[string]interface{}{"header": false, "indent": "  "}).
		From(Order{ID: 1, Title: "first"}).
		Serialize(responseRecorder)
	suite.Require().NoError(err)
	suite.Require().Equal("<order>\n  <id>1</id>\n  <title>first</title>\n</order>", responseRecorder.Body.String())
}

func (suite *SerializationTestSuite) TestUnsupportedMapKey() {
	err := suite.createSerialization(nil).
		FromWithAlias(map[int]string{1: "a"}, "numbers").
		Serialize(httptest.NewRecorder())
	suite.Require().Error(err)
}

func (suite *SerializationTestSuite) createSerialization(attributes map[string]interface{}) serialization.Serialization {
	xmlSerialization, err := (&factory{}).Create(suite.logger, serialization.NewConfiguration("xml",
		&representationconfig.Serialization{Attributes: attributes},
		nil))
	suite.Require().NoError(err)

	return xmlSerialization
}

func TestSerializationTestSuite(t *testing.T) {
	suite.Run(t, new(SerializationTestSuite))
}
