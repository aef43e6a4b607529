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

package healthcheck

import (
	"github.com/go-chi/chi/v5"
	"github.com/heptiolabs/healthcheck"
	"github.com/nuclio/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	LivePath  = "/live"
	ReadyPath = "/ready"
)

type Server struct {
	Logger  logger.Logger
	Handler healthcheck.Handler
}

// NewServer creates liveness and readiness endpoints. when metricsRegisterer is given, the result of
// every check is exported as a gauge under namespace
func NewServer(parentLogger logger.Logger,
	metricsRegisterer prometheus.Registerer,
	namespace string) *Server {
	server := &Server{
		Logger: parentLogger.GetChild("healthcheck"),
	}

	if metricsRegisterer != nil {
		server.Handler = healthcheck.NewMetricsHandler(metricsRegisterer, namespace)
	} else {
		server.Handler = healthcheck.NewHandler()
	}

	return server
}

func (s *Server) AddLivenessCheck(name string, check healthcheck.Check) {
	s.Handler.AddLivenessCheck(name, check)
}

func (s *Server) AddReadinessCheck(name string, check healthcheck.Check) {
	s.Handler.AddReadinessCheck(name, check)
}

// InstallRoutes serves the endpoints on router
func (s *Server) InstallRoutes(router chi.Router) {
	router.Get(LivePath, s.Handler.LiveEndpoint)
	router.Get(ReadyPath, s.Handler.ReadyEndpoint)

	s.Logger.DebugWith("Serving health checks", "live", LivePath, "ready", ReadyPath)
}
