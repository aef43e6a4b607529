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

package protobuf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nuclio/representation/pkg/representationconfig"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

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
	protobufSerialization := suite.createSerialization(nil)

	suite.Require().True(protobufSerialization.Accepts("protobuf"))
	suite.Require().False(protobufSerialization.Accepts("json"))
}

func (suite *SerializationTestSuite) TestBinary() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(nil).FromWithAlias(wrapperspb.String("first"), "title").Serialize(responseRecorder)
	suite.Require().NoError(err)
	suite.Require().Equal(ContentType, responseRecorder.Header().Get("Content-Type"))

	decoded := &wrapperspb.StringValue{}
	suite.Require().NoError(proto.Unmarshal(responseRecorder.Body.Bytes(), decoded))
	suite.Require().Equal("first", decoded.GetValue())
}

func (suite *SerializationTestSuite) TestJSON() {
	responseRecorder := httptest.NewRecorder()

	err := suite.createSerialization(map[string]interface{}{"json": true}).
		From(wrapperspb.Int64(42)).
		Serialize(responseRecorder)
	suite.Require().NoError(err)
	suite.Require().Equal(JSONContentType, responseRecorder.Header().Get("Content-Type"))

	decoded := &wrapperspb.Int64Value{}
	suite.Require().NoError(protojson.Unmarshal(responseRecorder.Body.Bytes(), decoded))
	suite.Require().Equal(int64(42), decoded.GetValue())
}

func (suite *SerializationTestSuite) TestNotAMessage() {
	for _, object := range []interface{}{
		map[string]string{"title": "first"},
		nil,
	} {
		responseRecorder := httptest.NewRecorder()

		err := suite.createSerialization(nil).From(object).Serialize(responseRecorder)
		suite.Require().Error(err)
		suite.Require().Equal(http.StatusNotAcceptable, responseRecorder.Code)
		suite.Require().Empty(responseRecorder.Body.Bytes())
	}
}

func (suite *SerializationTestSuite) createSerialization(attributes map[string]interface{}) serialization.Serialization {
	protobufSerialization, err := (&factory{}).Create(suite.logger, serialization.NewConfiguration("protobuf",
		&representationconfig.Serialization{Attributes: attributes},
		nil))
	suite.Require().NoError(err)

	return protobufSerialization
}

func TestSerializationTestSuite(t *testing.T) {
	suite.Run(t, new(SerializationTestSuite))
}
