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

package command

import (
	"os"

	"github.com/nuclio/representation/pkg/representationconfig"
	// load all resources and serialization kinds
	_ "github.com/nuclio/representation/pkg/representer/resource"
	_ "github.com/nuclio/representation/pkg/serialization/kinds"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const defaultConfigurationPath = "/etc/representer/config.yaml"

type RootCommandeer struct {
	loggerInstance    logger.Logger
	cmd               *cobra.Command
	configurationPath string
	verbose           bool
	configuration     *representationconfig.Config
}

func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:           "representer [command]",
		Short:         "Content-negotiated representation server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configurationPath := os.Getenv("REPRESENTER_CONFIG")
	if configurationPath == "" {
		configurationPath = defaultConfigurationPath
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.configurationPath,
		"config",
		"c",
		configurationPath,
		"Path to a configuration file. Defaults are used if it doesn't exist")

	// add children
	cmd.AddCommand(
		newServeCommandeer(commandeer).cmd,
		newFormatsCommandeer(commandeer).cmd,
		newVersionCommandeer(commandeer).cmd,
		newDocsCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

// CreateMarkdown generates MD files in the target path
func (rc *RootCommandeer) CreateMarkdown(path string) error {
	return doc.GenMarkdownTree(rc.cmd, path)
}

func (rc *RootCommandeer) initialize() error {
	var err error

	configurationReader, err := representationconfig.NewReader()
	if err != nil {
		return errors.Wrap(err, "Failed to create configuration reader")
	}

	rc.configuration, err = configurationReader.ReadFileOrDefault(rc.configurationPath)
	if err != nil {
		return errors.Wrap(err, "Failed to read configuration")
	}

	rc.loggerInstance, err = rc.createLogger()
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}

	rc.loggerInstance.DebugWith("Read configuration", "path", rc.configurationPath)

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	loggerLevel := nucliozap.InfoLevel

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else if rc.configuration.Logger.Level != "" {
		loggerLevel = nucliozap.GetLevelByName(rc.configuration.Logger.Level)
	}

	// commands write their output to stdout, so logs go to stderr
	loggerInstance, err := nucliozap.NewNuclioZapCmd("representer", loggerLevel, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

type docsCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newDocsCommandeer(rootCommandeer *RootCommandeer) *docsCommandeer {
	commandeer := &docsCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:    "docs [path]",
		Short:  "Generate markdown documentation of the commands",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandeer.rootCommandeer.CreateMarkdown(args[0])
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
