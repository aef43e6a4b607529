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

package restful

import (
	"context"
	"net"
	"net/http"

	"github.com/nuclio/representation/pkg/registry"
	"github.com/nuclio/representation/pkg/representationconfig"
	"github.com/nuclio/representation/pkg/restful/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

// Server
type Server interface {

	// InstallMiddleware installs middlewares on a router, after the common middleware
	InstallMiddleware(router chi.Router) error
}

type AbstractServer struct {
	Logger           logger.Logger
	Enabled          bool
	ListenAddress    string
	Router           chi.Router
	resourceRegistry *registry.Registry
	server           Server
	httpServer       *http.Server
	listener         net.Listener
}

func NewAbstractServer(parentLogger logger.Logger,
	resourceRegistry *registry.Registry,
	server Server,
	configuration *representationconfig.WebServer) (*AbstractServer, error) {

	var err error

	newServer := &AbstractServer{
		Logger:           parentLogger.GetChild("server"),
		resourceRegistry: resourceRegistry,
		server:           server,
	}

	if err := newServer.readConfiguration(configuration); err != nil {
		return nil, errors.Wrap(err, "Failed to read configuration")
	}

	newServer.Router, err = newServer.createRouter()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create router")
	}

	// create the resources registered
	for _, resourceName := range newServer.resourceRegistry.GetKinds() {
		resourceInstance, _ := newServer.resourceRegistry.Get(resourceName)

		// create the resource router and add it
		resourceRouter, err := resourceInstance.(Resource).Initialize(newServer.Logger, newServer.server)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to create resource router for %s", resourceName)
		}

		// register the router into the root router
		newServer.Router.Mount("/"+resourceName, resourceRouter)

		newServer.Logger.DebugWith("Registered resource", "name", resourceName)
	}

	return newServer, nil
}

func (s *AbstractServer) Start() error {

	// if we're not enabled, we're done here
	if !s.Enabled {
		s.Logger.Debug("Server disabled, not listening")
		return nil
	}

	// bind before returning so that address errors reach the caller
	listener, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "Failed to listen on %s", s.ListenAddress)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Addr:    s.ListenAddress,
		Handler: s.Router,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.Logger.WarnWith("Server stopped listening", "err", err.Error())
		}
	}()

	s.Logger.InfoWith("Listening", "listenAddress", listener.Addr().String())

	return nil
}

// GetListenAddress returns the address the server is bound to, or an empty string when not listening
func (s *AbstractServer) GetListenAddress() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Stop gracefully shuts down a started server
func (s *AbstractServer) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "Failed to shut down server")
	}

	return nil
}

func (s *AbstractServer) InstallMiddleware(router chi.Router) error {
	router.Use(middleware.RequestID)
	router.Use(middleware.AlignRequestIDKeyToLogger)
	router.Use(middleware.RequestResponseLogger(s.Logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.StripSlashes)

	return nil
}

func (s *AbstractServer) createRouter() (chi.Router, error) {
	router := chi.NewRouter()

	if err := s.InstallMiddleware(router); err != nil {
		return nil, errors.Wrap(err, "Failed to install middleware")
	}

	// the concrete server adds its own middleware on top
	if s.server != nil {
		if err := s.server.InstallMiddleware(router); err != nil {
			return nil, errors.Wrap(err, "Failed to install server middleware")
		}
	}

	return router, nil
}

func (s *AbstractServer) readConfiguration(configuration *representationconfig.WebServer) error {
	if configuration.Enabled == nil {
		return errors.New("Enabled must carry a value")
	}

	// set configuration
	s.Enabled = *configuration.Enabled
	s.ListenAddress = configuration.ListenAddress

	return nil
}
