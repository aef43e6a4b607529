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
	"github.com/nuclio/representation/pkg/representation"

	"github.com/nuclio/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// DispatchMetrics counts representation decisions
type DispatchMetrics struct {
	dispatchTotal *prometheus.CounterVec
}

func NewDispatchMetrics(metricRegistry prometheus.Registerer) (*DispatchMetrics, error) {
	newDispatchMetrics := &DispatchMetrics{
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "representation_dispatch_total",
			Help: "Total number of dispatched representations",
		}, []string{"resource", "kind", "outcome"}),
	}

	if err := metricRegistry.Register(newDispatchMetrics.dispatchTotal); err != nil {
		return nil, errors.Wrap(err, "Failed to register dispatch metric")
	}

	return newDispatchMetrics, nil
}

// ObserveDispatch counts a decision made while serving a resource. the requested format is client
// input and is never used as a label, only the kind of the chosen candidate
func (dm *DispatchMetrics) ObserveDispatch(resourceName string, decision *representation.Decision) {
	kind := ""
	if decision.Outcome == representation.OutcomeSerialized {
		kind = decision.Kind
	}

	dm.dispatchTotal.With(prometheus.Labels{
		"resource": resourceName,
		"kind":     kind,
		"outcome":  string(decision.Outcome),
	}).Inc()
}
