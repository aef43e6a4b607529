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

package representationconfig

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReaderTestSuite struct {
	suite.Suite
	reader *Reader
}

func (suite *ReaderTestSuite) SetupTest() {
	suite.reader, _ = NewReader()
}

func (suite *ReaderTestSuite) TestReadConfiguration() {
	configurationContents := `
webServer:
  listenAddress: :9090
logger:
  level: info
representation:
  applicationNamespace: github.com/acme/shop
  mediaTypes:
    application/vnd.acme+json: json
serializations:
  xml:
    namespace: github.com/acme/shop/xml
    attributes:
      indent: "  "
  cbor:
    enabled: false
`
	config := suite.reader.GetDefaultConfiguration()

	err := suite.reader.Read(strings.NewReader(configurationContents), config)
	suite.Require().NoError(err)

	// values from file
	suite.Equal(":9090", config.WebServer.ListenAddress)
	suite.Equal("info", config.Logger.Level)
	suite.Equal("github.com/acme/shop", config.Representation.ApplicationNamespace)
	suite.Equal("json", config.Representation.MediaTypes["application/vnd.acme+json"])

	// values from defaults
	suite.True(*config.WebServer.Enabled)
	suite.Equal("/metrics", config.Metrics.Path)
	suite.Equal(DefaultGoroutineThreshold, config.HealthCheck.GoroutineThreshold)
	suite.Equal(DefaultFormatParameter, config.Representation.FormatParameter)
	suite.Equal(DefaultFormat, config.GetDefaultFormat())
	suite.Equal(DefaultTemplate, config.Representation.DefaultTemplate)

	// serializations
	xmlConfiguration := config.GetSerialization("xml")
	suite.True(xmlConfiguration.IsEnabled())
	suite.Equal("github.com/acme/shop/xml", xmlConfiguration.Namespace)
	suite.Equal("  ", xmlConfiguration.Attributes["indent"])
	suite.False(config.GetSerialization("cbor").IsEnabled())
	suite.True(config.GetSerialization("unconfigured").IsEnabled())
}

func (suite *ReaderTestSuite) TestExplicitEmptyDefaultFormat() {
	config := suite.reader.GetDefaultConfiguration()

	err := suite.reader.Read(strings.NewReader(`representation: {defaultFormat: ""}`), config)
	suite.Require().NoError(err)
	suite.Equal("", config.GetDefaultFormat())
}

func (suite *ReaderTestSuite) TestInvalidConfiguration() {
	config := suite.reader.GetDefaultConfiguration()

	err := suite.reader.Read(strings.NewReader(`logger: {level: loud}`), config)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "Invalid configuration")
}

func (suite *ReaderTestSuite) TestDisableWebServer() {
	config := suite.reader.GetDefaultConfiguration()

	err := suite.reader.Read(strings.NewReader(`webServer: {enabled: false}`), config)
	suite.Require().NoError(err)
	suite.False(*config.WebServer.Enabled)
	suite.Equal(":8070", config.WebServer.ListenAddress)

	// other sections keep their own values
	suite.True(*config.Metrics.Enabled)
	suite.True(*config.HealthCheck.Enabled)
}

func (suite *ReaderTestSuite) TestReadFileOrDefault() {

	// missing file yields defaults
	config, err := suite.reader.ReadFileOrDefault("/does/not/exist.yaml")
	suite.Require().NoError(err)
	suite.Equal(suite.reader.GetDefaultConfiguration(), config)

	// existing file is read
	configurationPath := path.Join(suite.T().TempDir(), "representation.yaml")
	err = os.WriteFile(configurationPath, []byte("webServer: {listenAddress: \":7000\"}"), 0644)
	suite.Require().NoError(err)

	config, err = suite.reader.ReadFileOrDefault(configurationPath)
	suite.Require().NoError(err)
	suite.Equal(":7000", config.WebServer.ListenAddress)
	suite.NoError(config.Validate())
}

func TestReaderTestSuite(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}
