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

package resource

import (
	"net/http"

	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/representer"
	"github.com/nuclio/representation/pkg/restful"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/samber/lo"
)

type negotiationInfo struct {
	Format string `json:"format" xml:"format"`
	Kind   string `json:"kind,omitempty" xml:"kind,omitempty"`
}

type serializationResource struct {
	*resource
}

// GetAll returns the candidates in the order the dispatcher consults them
func (sr *serializationResource) GetAll(request *http.Request) (interface{}, string, error) {
	return sr.getSerializationInfos(), "serializations", nil
}

// GetByID returns a single candidate by its kind
func (sr *serializationResource) GetByID(request *http.Request, id string) (interface{}, string, error) {
	info, found := lo.Find(sr.getSerializationInfos(), func(candidateInfo *representer.SerializationInfo) bool {
		return candidateInfo.Kind == id
	})
	if !found {
		return nil, "", nil
	}

	return info, "serialization", nil
}

// GetCustomRoutes returns a list of custom routes for the resource
func (sr *serializationResource) GetCustomRoutes() ([]restful.CustomRoute, error) {
	return []restful.CustomRoute{
		{
			Pattern:   "/negotiated",
			Method:    http.MethodGet,
			RouteFunc: sr.getNegotiated,
		},
	}, nil
}

// getNegotiated reports which format and candidate the request negotiates to
func (sr *serializationResource) getNegotiated(request *http.Request) (interface{}, string, error) {
	representerServer := sr.getRepresenter()

	acceptFormat := format.NewRequestResolver(request,
		representerServer.GetConfiguration().Representation.FormatParameter,
		representerServer.GetAcceptHeaderToFormat()).GetAcceptFormat()

	negotiation := &negotiationInfo{
		Format: acceptFormat,
	}

	if acceptingCandidate, found := lo.Find(representerServer.GetCandidates(), func(candidate *serialization.Candidate) bool {
		return acceptFormat != "" && candidate.Serialization.Accepts(acceptFormat)
	}); found {
		negotiation.Kind = acceptingCandidate.Kind
	}

	return negotiation, "negotiation", nil
}

func (sr *serializationResource) getSerializationInfos() representer.SerializationInfos {
	representerServer := sr.getRepresenter()

	return representer.DescribeCandidates(representerServer.GetCandidates(),
		representerServer.GetConfiguration().Representation.ApplicationNamespace,
		representerServer.GetAcceptHeaderToFormat())
}

// register the resource
var serializationResourceInstance = &serializationResource{
	resource: newResource("api/serializations", []restful.ResourceMethod{
		restful.ResourceMethodGetList,
		restful.ResourceMethodGetDetail,
	}),
}

func init() {
	serializationResourceInstance.Resource = serializationResourceInstance
	serializationResourceInstance.Register(representer.ResourceRegistrySingleton)
}
