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

package representer

import (
	"net/http"

	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/common/healthcheck"
	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/registry"
	"github.com/nuclio/representation/pkg/representation"
	"github.com/nuclio/representation/pkg/representationconfig"
	"github.com/nuclio/representation/pkg/restful"
	"github.com/nuclio/representation/pkg/serialization"
	"github.com/nuclio/representation/pkg/status"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	heptiohealthcheck "github.com/heptiolabs/healthcheck"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

var ResourceRegistrySingleton = registry.NewRegistry("resource")

type Server struct {
	*restful.AbstractServer
	configuration        *representationconfig.Config
	candidates           []*serialization.Candidate
	acceptHeaderToFormat *format.AcceptHeaderToFormat
	metricsRegistry      *prometheus.Registry
	dispatchMetrics      *restful.DispatchMetrics
	healthCheckServer    *healthcheck.Server
}

func NewServer(parentLogger logger.Logger,
	resourceRegistry *registry.Registry,
	configuration *representationconfig.Config,
	candidates []*serialization.Candidate) (*Server, error) {
	var err error

	newServer := &Server{
		configuration:   configuration,
		candidates:      candidates,
		metricsRegistry: prometheus.NewRegistry(),
	}

	newServer.acceptHeaderToFormat, err = format.NewAcceptHeaderToFormat(configuration.GetDefaultFormat(),
		configuration.Representation.MediaTypes)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create accept header mapping")
	}

	// settle on media types some candidate can output, including application formats
	newServer.acceptHeaderToFormat.SetFormatAcceptor(newServer.acceptsFormat)

	newServer.dispatchMetrics, err = restful.NewDispatchMetrics(newServer.metricsRegistry)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create dispatch metrics")
	}

	// create server
	newServer.AbstractServer, err = restful.NewAbstractServer(parentLogger,
		resourceRegistry,
		newServer,
		&configuration.WebServer)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create restful server")
	}

	if configuration.Metrics.Enabled != nil && *configuration.Metrics.Enabled {
		if err := newServer.addMetricsRoute(configuration.Metrics.Path); err != nil {
			return nil, errors.Wrap(err, "Failed to add metrics route")
		}
	}

	if configuration.HealthCheck.Enabled != nil && *configuration.HealthCheck.Enabled {
		newServer.addHealthCheckRoutes(configuration.HealthCheck.GoroutineThreshold)
	}

	newServer.Logger.InfoWith("Initialized",
		"applicationNamespace", configuration.Representation.ApplicationNamespace,
		"defaultFormat", configuration.GetDefaultFormat(),
		"formatParameter", configuration.Representation.FormatParameter,
		"numCandidates", len(candidates))

	return newServer, nil
}

// InstallMiddleware adds CORS handling on top of the common middleware
func (s *Server) InstallMiddleware(router chi.Router) error {
	exposedHeaders := []string{
		headers.Format,
		headers.Representation,
		headers.RequestID,
	}

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
			headers.Format,
			headers.RequestID,
		},
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	}

	// create new CORS instance
	router.Use(cors.New(corsOptions).Handler)

	return nil
}

// NewRepresentationResult creates a dispatcher bound to a single request
func (s *Server) NewRepresentationResult(responseWriter http.ResponseWriter,
	request *http.Request) *representation.DefaultResult {
	return representation.NewDefaultResult(s.Logger,
		format.NewRequestResolver(request,
			s.configuration.Representation.FormatParameter,
			s.acceptHeaderToFormat),
		status.NewHTTPStatus(s.Logger, responseWriter),
		s.candidates)
}

func (s *Server) ObserveDispatch(resourceName string, decision *representation.Decision) {
	s.dispatchMetrics.ObserveDispatch(resourceName, decision)
}

func (s *Server) acceptsFormat(acceptFormat string) bool {
	return lo.ContainsBy(s.candidates, func(candidate *serialization.Candidate) bool {
		return candidate.Serialization.Accepts(acceptFormat)
	})
}

// GetCandidates returns the serialization candidates in priority order
func (s *Server) GetCandidates() []*serialization.Candidate {
	return s.candidates
}

func (s *Server) GetAcceptHeaderToFormat() *format.AcceptHeaderToFormat {
	return s.acceptHeaderToFormat
}

func (s *Server) GetConfiguration() *representationconfig.Config {
	return s.configuration
}

func (s *Server) GetMetricsRegistry() *prometheus.Registry {
	return s.metricsRegistry
}

func (s *Server) addHealthCheckRoutes(goroutineThreshold int) {
	s.healthCheckServer = healthcheck.NewServer(s.Logger, s.metricsRegistry, "representer")

	if goroutineThreshold > 0 {
		s.healthCheckServer.AddLivenessCheck("goroutine-threshold",
			heptiohealthcheck.GoroutineCountCheck(goroutineThreshold))
	}

	// a dispatcher without candidates can only answer 404 and 406
	s.healthCheckServer.AddReadinessCheck("candidates", func() error {
		if len(s.candidates) == 0 {
			return errors.New("No serialization candidates")
		}

		return nil
	})

	s.healthCheckServer.InstallRoutes(s.Router)
}

func (s *Server) addMetricsRoute(metricsPath string) error {
	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := s.metricsRegistry.Register(collector); err != nil {
			return errors.Wrap(err, "Failed to register runtime collector")
		}
	}

	s.Router.Handle(metricsPath, promhttp.HandlerFor(s.metricsRegistry, promhttp.HandlerOpts{}))

	s.Logger.DebugWith("Serving metrics", "path", metricsPath)

	return nil
}
