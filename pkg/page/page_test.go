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

package page

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path"
	"testing"
	"testing/fstest"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
)

type PageTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (suite *PageTestSuite) SetupTest() {
	suite.logger, _ = nucliozap.NewNuclioZapTest("test")
}

func (suite *PageTestSuite) TestBuiltinTemplate() {
	renderer, err := NewTemplateRendererFromDir(suite.logger, "", "default")
	suite.Require().NoError(err)

	recorder := httptest.NewRecorder()

	result := renderer.NewResult(recorder)
	result.Include("order", map[string]interface{}{"id": 5})
	suite.Require().NoError(result.DefaultView())

	suite.Equal("text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Contains(recorder.Body.String(), `<section id="order">`)
	suite.Contains(recorder.Body.String(), "map[id:5]")
}

func (suite *PageTestSuite) TestTemplatesDirNotFound() {
	_, err := NewTemplateRendererFromDir(suite.logger, path.Join(suite.T().TempDir(), "missing"), "default")
	suite.Require().Error(err)
}

func (suite *PageTestSuite) TestTemplatesFromDir() {
	templatesDir := suite.T().TempDir()
	err := os.WriteFile(path.Join(templatesDir, "greeting.html"),
		[]byte(`{{ define "greeting" }}<p>{{ .greeting }}</p>{{ end }}`),
		0600)
	suite.Require().NoError(err)

	renderer, err := NewTemplateRendererFromDir(suite.logger, templatesDir, "greeting")
	suite.Require().NoError(err)

	recorder := httptest.NewRecorder()

	result := renderer.NewResult(recorder)
	result.Include("greeting", "hello")
	suite.Require().NoError(result.DefaultView())
	suite.Equal("<p>hello</p>", recorder.Body.String())
}

func (suite *PageTestSuite) TestTemplatesFromFS() {
	templatesFS := fstest.MapFS{
		"orders.html": {Data: []byte(`{{ define "orders" }}<ul>{{ range .orders }}<li>{{ . }}</li>{{ end }}</ul>{{ end }}`)},
		"index.html":  {Data: []byte(`{{ define "index" }}<p>{{ .greeting }}</p>{{ end }}`)},
	}

	renderer, err := NewTemplateRenderer(suite.logger, templatesFS, "orders")
	suite.Require().NoError(err)

	recorder := httptest.NewRecorder()

	result := renderer.NewResult(recorder)
	result.Include("orders", []string{"a", "<b>"})
	suite.Require().NoError(result.DefaultView())

	suite.Equal("<ul><li>a</li><li>&lt;b&gt;</li></ul>", recorder.Body.String())

	// render a non-default template directly
	var buffer bytes.Buffer
	suite.Require().NoError(renderer.Render(&buffer, "index", Model{"greeting": "hello"}))
	suite.Equal("<p>hello</p>", buffer.String())
}

func (suite *PageTestSuite) TestMissingTemplate() {
	renderer, err := NewTemplateRenderer(suite.logger, nil, "default")
	suite.Require().NoError(err)

	err = renderer.Render(&bytes.Buffer{}, "missing", Model{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "Template not found")
}

func TestPageTestSuite(t *testing.T) {
	suite.Run(t, new(PageTestSuite))
}
