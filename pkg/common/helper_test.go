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
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HelperTestSuite struct {
	suite.Suite
	tempDir  string
	tempFile string
}

func (suite *HelperTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	suite.tempFile = path.Join(suite.tempDir, "temp_file")

	err := os.WriteFile(suite.tempFile, []byte("contents"), 0600)
	suite.Require().NoError(err)
}

func (suite *HelperTestSuite) TestIsFile() {
	suite.Require().True(IsFile(suite.tempFile))
	suite.Require().False(IsFile(suite.tempDir))
	suite.Require().False(IsFile(path.Join(suite.tempDir, "missing")))
}

func (suite *HelperTestSuite) TestIsDir() {
	suite.Require().True(IsDir(suite.tempDir))
	suite.Require().False(IsDir(suite.tempFile))
	suite.Require().False(IsDir(path.Join(suite.tempDir, "missing")))
}

func TestHelperTestSuite(t *testing.T) {
	suite.Run(t, new(HelperTestSuite))
}
