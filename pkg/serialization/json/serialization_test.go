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

package json

import (
	"net/http/httptest"
	"testing"

	"github.com/nuclio/representation/pkg/representationconfig"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
)

type order struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
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
	jsonSerialization := suite.createSerialization(nil)

	suite.Require().True(jsonSerialization.Accepts("json"))
	suite.Require().True(jsonSerialization.Accepts("JSON"))
	suite.Require().False(jsonSerialization.Accepts("xml"))
	suite.Require().False(jsonSerialization.Accepts(""))
}

func (suite *SerializationTestSuite) TestFrom() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(nil).From(&order{ID: 1, Title: "<first>"}).Serialize(responseRecorder)
	suite.Require().NoError(err)

	suite.Require().Equal(ContentType, responseRecorder.Header().Get("Content-Type"))
	suite.Require().JSONEq(`{"id": 1, "title": "<first>"}`, responseRecorder.Body.String())
	suite.Require().Contains(responseRecorder.Body.String(), `\u003cfirst\u003e`)
}

func (suite *SerializationTestSuite) TestFromWithAlias() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(nil).
		FromWithAlias([]order{{ID: 1, Title: "first"}}, "orders").
		Serialize(responseRecorder)
	suite.Require().NoError(err)

	suite.Require().JSONEq(`{"orders": [{"id": 1, "title": "first"}]}`, responseRecorder.Body.String())
}

func (suite *SerializationTestSuite) TestAttributes() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(map[string]interface{}{
		"indent":     "  ",
		"escapeHTML": false,
	}).From(map[string]interface{}{"title": "<first>"}).Serialize(responseRecorder)
	suite.Require().NoError(err)

	suite.Require().Equal("{\n  \"title\": \"<first>\"\n}\n", responseRecorder.Body.String())
}

func (suite *SerializationTestSuite) TestInvalidAttributes() {
	_, err := (&factory{}).Create(suite.logger, serialization.NewConfiguration("json",
		&representationconfig.Serialization{
			Attributes: map[string]interface{}{"indent": []int{1}},
		}, nil))
	suite.Require().Error(err)
}

func (suite *SerializationTestSuite) TestUnsupportedObject() {
	err := suite.createSerialization(nil).From(make(chan int)).Serialize(httptest.NewRecorder())
	suite.Require().Error(err)
}

func (suite *SerializationTestSuite) createSerialization(attributes map[string]interface{}) serialization.Serialization {
	jsonSerialization, err := (&factory{}).Create(suite.logger, serialization.NewConfiguration("json",
		&representationconfig.Serialization{Attributes: attributes},
		nil))
	suite.Require().NoError(err)

	return jsonSerialization
}

func TestSerializationTestSuite(t *testing.T) {
	suite.Run(t, new(SerializationTestSuite))
}
