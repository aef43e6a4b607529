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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nuclio/representation/pkg/representer"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
	"github.com/v3io/version-go"
)

type serveCommandeer struct {
	cmd             *cobra.Command
	rootCommandeer  *RootCommandeer
	listenAddress   string
	templatesDir    string
	shutdownTimeout time.Duration
}

func newServeCommandeer(rootCommandeer *RootCommandeer) *serveCommandeer {
	commandeer := &serveCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the representation API",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			// flags override the configuration file
			if commandeer.listenAddress != "" {
				rootCommandeer.configuration.WebServer.ListenAddress = commandeer.listenAddress
			}

			if commandeer.templatesDir != "" {
				rootCommandeer.configuration.Representation.PageTemplatesDir = commandeer.templatesDir
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return commandeer.serve(ctx)
		},
	}

	cmd.Flags().StringVarP(&commandeer.listenAddress, "listen-addr", "l", "", "IP/port on which the server listens")
	cmd.Flags().StringVarP(&commandeer.templatesDir, "templates-dir", "t", "", "Directory of page templates")
	cmd.Flags().DurationVar(&commandeer.shutdownTimeout, "shutdown-timeout", 10*time.Second, "Time to wait for in-flight requests on shutdown")

	commandeer.cmd = cmd

	return commandeer
}

func (s *serveCommandeer) serve(ctx context.Context) error {
	rootLogger := s.rootCommandeer.loggerInstance
	configuration := s.rootCommandeer.configuration

	candidates, err := s.rootCommandeer.createCandidates()
	if err != nil {
		return errors.Wrap(err, "Failed to create candidates")
	}

	rootLogger.InfoWith("Starting representer",
		"version", version.Get(),
		"listenAddress", configuration.WebServer.ListenAddress,
		"applicationNamespace", configuration.Representation.ApplicationNamespace)

	server, err := representer.NewServer(rootLogger,
		representer.ResourceRegistrySingleton,
		configuration,
		candidates)
	if err != nil {
		return errors.Wrap(err, "Failed to create server")
	}

	if err := server.Start(); err != nil {
		return errors.Wrap(err, "Failed to start server")
	}

	<-ctx.Done()

	rootLogger.InfoWith("Shutting down", "timeout", s.shutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return server.Stop(shutdownCtx)
}
