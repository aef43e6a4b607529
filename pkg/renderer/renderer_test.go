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

package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type functionTable struct{}

func (ft *functionTable) GetTableHeader() []interface{} {
	return []interface{}{"Name", "Replicas"}
}

func (ft *functionTable) GetTableRecords() [][]interface{} {
	return [][]interface{}{
		{"echo", 1},
		{"reverser", 3},
	}
}

type RendererTestSuite struct {
	suite.Suite
	output   *bytes.Buffer
	renderer *Renderer
}

func (suite *RendererTestSuite) SetupTest() {
	suite.output = &bytes.Buffer{}
	suite.renderer = NewRenderer(suite.output)
}

func (suite *RendererTestSuite) TestRenderTabular() {
	suite.renderer.RenderTabular("functions", &functionTable{})

	rendered := suite.output.String()
	suite.Require().Contains(rendered, "functions")
	suite.Require().Contains(rendered, "NAME")
	suite.Require().Contains(rendered, "reverser")
	suite.Require().Regexp(`echo\s+\|\s+1`, rendered)
}

func (suite *RendererTestSuite) TestRenderAttributesOrdersKeys() {
	suite.renderer.RenderAttributes("", map[string]interface{}{
		"zeta":  1,
		"alpha": 2,
	})

	rendered := suite.output.String()
	suite.Require().Less(bytes.Index(suite.output.Bytes(), []byte("alpha")),
		bytes.Index(suite.output.Bytes(), []byte("zeta")))
	suite.Require().Contains(rendered, "KEY")
}

func (suite *RendererTestSuite) TestRenderValue() {
	suite.Require().NoError(suite.renderer.RenderValue("count", 3))
	suite.Require().NoError(suite.renderer.RenderValue("", "plain"))
	suite.Require().Equal("count: 3\nplain\n", suite.output.String())
}

func (suite *RendererTestSuite) TestRenderYAML() {
	suite.Require().NoError(suite.renderer.RenderYAML(map[string]interface{}{"name": "echo"}))
	suite.Require().Equal("name: echo\n", suite.output.String())
}

func (suite *RendererTestSuite) TestRenderJSON() {
	suite.Require().NoError(suite.renderer.RenderJSON(map[string]interface{}{"name": "<echo>"}, "", false))
	suite.Require().Equal(`{"name":"<echo>"}`+"\n", suite.output.String())

	suite.output.Reset()
	suite.Require().NoError(suite.renderer.RenderJSON(map[string]interface{}{"name": "<echo>"}, "", true))
	suite.Require().Equal(`{"name":"\u003cecho\u003e"}`+"\n", suite.output.String())

	suite.output.Reset()
	suite.Require().Error(suite.renderer.RenderJSON(make(chan int), "", true))
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}
