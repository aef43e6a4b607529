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
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
	"github.com/v3io/version-go"
)

type versionCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	output         string
}

func newVersionCommandeer(rootCommandeer *RootCommandeer) *versionCommandeer {
	commandeer := &versionCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version number of representer",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			candidates, err := rootCommandeer.createCandidates()
			if err != nil {
				return errors.Wrap(err, "Failed to create candidates")
			}

			return rootCommandeer.represent(cmd.OutOrStdout(),
				candidates,
				commandeer.output,
				version.Get(),
				"version")
		},
	}

	cmd.Flags().StringVarP(&commandeer.output, "output", "o", "text", "Output format")

	commandeer.cmd = cmd

	return commandeer
}
