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
	"net/http"

	"github.com/nuclio/representation/pkg/common"
	"github.com/nuclio/representation/pkg/common/headers"
	"github.com/nuclio/representation/pkg/registry"
	"github.com/nuclio/representation/pkg/representation"

	"github.com/go-chi/chi/v5"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/nuclio/nuclio-sdk-go"
)

type Attributes map[string]interface{}

// RouteFunc handles a request, returning the object to represent and the alias to represent it under
type RouteFunc func(*http.Request) (interface{}, string, error)

type CustomRoute struct {
	Pattern    string
	Method     string
	StatusCode int
	RouteFunc  RouteFunc
}

// Representer creates the representation result of each request
type Representer interface {

	// NewRepresentationResult returns a result which writes statuses and serializations to responseWriter
	NewRepresentationResult(responseWriter http.ResponseWriter, request *http.Request) *representation.DefaultResult

	// ObserveDispatch is called with every decision taken while serving a resource
	ObserveDispatch(resourceName string, decision *representation.Decision)
}

// ErrorResponse is represented instead of the object when a handler fails
type ErrorResponse struct {
	Error      string `json:"error" xml:"message"`
	StatusCode int    `json:"statusCode" xml:"statusCode"`
}

type Resource interface {

	// Initialize creates the resource router
	Initialize(parentLogger logger.Logger, server interface{}) (chi.Router, error)

	// Called after initialization
	OnAfterInitialize() error

	// returns a list of custom routes for the resource
	GetCustomRoutes() ([]CustomRoute, error)

	// return all instances
	GetAll(request *http.Request) (interface{}, string, error)

	// return specific instance by ID. a nil instance is reported as not found
	GetByID(request *http.Request, id string) (interface{}, string, error)

	// returns the created instance
	Create(request *http.Request) (interface{}, string, error)

	// returns the updated instance
	Update(request *http.Request, id string) (interface{}, string, error)

	// delete an entity
	Delete(request *http.Request, id string) error
}

type ResourceMethod int

const (
	ResourceMethodGetList ResourceMethod = iota
	ResourceMethodGetDetail
	ResourceMethodCreate
	ResourceMethodUpdate
	ResourceMethodDelete
)

type AbstractResource struct {
	name            string
	Logger          logger.Logger
	router          chi.Router
	Resource        Resource
	resourceMethods []ResourceMethod
	server          interface{}
	representer     Representer
}

func NewAbstractResource(name string, resourceMethods []ResourceMethod) *AbstractResource {
	return &AbstractResource{
		name:            name,
		resourceMethods: resourceMethods,
	}
}

func (ar *AbstractResource) Initialize(parentLogger logger.Logger, server interface{}) (chi.Router, error) {
	var serverIsRepresenter bool

	ar.Logger = parentLogger.GetChild(ar.name)
	ar.server = server

	ar.representer, serverIsRepresenter = server.(Representer)
	if !serverIsRepresenter {
		return nil, errors.Errorf("Server of resource %s can't represent responses", ar.name)
	}

	ar.router = chi.NewRouter()

	// register routes based on supported methods
	if err := ar.registerRoutes(); err != nil {
		return nil, errors.Wrap(err, "Failed to register routes")
	}

	if err := ar.Resource.OnAfterInitialize(); err != nil {
		return nil, errors.Wrap(err, "Failed to initialize resource")
	}

	return ar.router, nil
}

func (ar *AbstractResource) Register(registry *registry.Registry) {
	registry.Register(ar.name, ar)
}

func (ar *AbstractResource) GetName() string {
	return ar.name
}

func (ar *AbstractResource) GetServer() interface{} {
	return ar.server
}

// for raw routes, those that aren't represented
func (ar *AbstractResource) GetRouter() chi.Router {
	return ar.router
}

// called after initialization
func (ar *AbstractResource) OnAfterInitialize() error {
	return nil
}

// returns a list of custom routes for the resource
func (ar *AbstractResource) GetCustomRoutes() ([]CustomRoute, error) {
	return nil, nil
}

func (ar *AbstractResource) GetAll(request *http.Request) (interface{}, string, error) {
	return nil, "", nuclio.ErrNotImplemented
}

func (ar *AbstractResource) GetByID(request *http.Request, id string) (interface{}, string, error) {
	return nil, "", nuclio.ErrNotImplemented
}

func (ar *AbstractResource) Create(request *http.Request) (interface{}, string, error) {
	return nil, "", nuclio.ErrNotImplemented
}

func (ar *AbstractResource) Update(request *http.Request, id string) (interface{}, string, error) {
	return nil, "", nuclio.ErrNotImplemented
}

func (ar *AbstractResource) Delete(request *http.Request, id string) error {
	return nuclio.ErrNotImplemented
}

func (ar *AbstractResource) registerRoutes() error {
	for _, resourceMethod := range ar.resourceMethods {
		switch resourceMethod {
		case ResourceMethodGetList:
			ar.router.Get("/", ar.handleGetList)
		case ResourceMethodGetDetail:
			ar.router.Get("/{id}", ar.handleGetDetail)
		case ResourceMethodCreate:
			ar.router.Post("/", ar.handleCreate)
		case ResourceMethodUpdate:
			ar.router.Put("/{id}", ar.handleUpdate)
		case ResourceMethodDelete:
			ar.router.Delete("/{id}", ar.handleDelete)
		}
	}

	return ar.registerCustomRoutes()
}

func (ar *AbstractResource) registerCustomRoutes() error {
	customRoutes, err := ar.Resource.GetCustomRoutes()
	if err != nil {
		return errors.Wrap(err, "Failed to get custom routes")
	}

	// iterate through the custom routes and register a handler for them
	for _, customRoute := range customRoutes {
		customRoute := customRoute

		if customRoute.StatusCode == 0 {
			customRoute.StatusCode = http.StatusOK
		}

		ar.router.MethodFunc(customRoute.Method,
			customRoute.Pattern,
			func(responseWriter http.ResponseWriter, request *http.Request) {
				object, alias, err := customRoute.RouteFunc(request)

				ar.represent(responseWriter, request, customRoute.StatusCode, object, alias, err)
			})
	}

	return nil
}

func (ar *AbstractResource) handleGetList(responseWriter http.ResponseWriter, request *http.Request) {
	object, alias, err := ar.Resource.GetAll(request)

	ar.represent(responseWriter, request, http.StatusOK, object, alias, err)
}

func (ar *AbstractResource) handleGetDetail(responseWriter http.ResponseWriter, request *http.Request) {

	// registered as "/:id/"
	resourceID := chi.URLParam(request, "id")

	// delegate to child
	object, alias, err := ar.Resource.GetByID(request, resourceID)
	if err == nil && common.IsNil(object) {
		err = nuclio.NewErrNotFound("Resource not found: " + resourceID)
	}

	ar.represent(responseWriter, request, http.StatusOK, object, alias, err)
}

func (ar *AbstractResource) handleCreate(responseWriter http.ResponseWriter, request *http.Request) {
	object, alias, err := ar.Resource.Create(request)

	ar.represent(responseWriter, request, http.StatusCreated, object, alias, err)
}

func (ar *AbstractResource) handleUpdate(responseWriter http.ResponseWriter, request *http.Request) {

	// registered as "/:id/"
	resourceID := chi.URLParam(request, "id")

	object, alias, err := ar.Resource.Update(request, resourceID)

	ar.represent(responseWriter, request, http.StatusOK, object, alias, err)
}

func (ar *AbstractResource) handleDelete(responseWriter http.ResponseWriter, request *http.Request) {

	// registered as "/:id/"
	resourceID := chi.URLParam(request, "id")

	if err := ar.Resource.Delete(request, resourceID); err != nil {
		ar.represent(responseWriter, request, http.StatusNoContent, nil, "", err)
		return
	}

	responseWriter.WriteHeader(http.StatusNoContent)
}

// represent writes the object in the format the client asked for. a failed handler has its error
// represented instead, with the error's status code
func (ar *AbstractResource) represent(responseWriter http.ResponseWriter,
	request *http.Request,
	statusCode int,
	object interface{},
	alias string,
	err error) {

	representationResponseWriter := newResponseWriter(responseWriter, statusCode)

	if err != nil {
		errorStatusCode := common.ResolveErrorStatusCodeOrDefault(err, http.StatusInternalServerError)

		ar.Logger.WarnWith("Failed to handle request",
			"path", request.URL.Path,
			"statusCode", errorStatusCode,
			"err", errors.GetErrorStackString(err, 10))

		object = &ErrorResponse{
			Error:      errors.RootCause(err).Error(),
			StatusCode: errorStatusCode,
		}
		alias = ""

		// the error's status code wins over statuses signaled while representing
		representationResponseWriter.WriteHeader(errorStatusCode)
	}

	result := ar.representer.NewRepresentationResult(representationResponseWriter, request)

	var decision *representation.Decision
	if alias == "" {
		decision = result.Dispatch(object)
	} else {
		decision = result.DispatchWithAlias(object, alias)
	}

	ar.representer.ObserveDispatch(ar.name, decision)

	switch decision.Outcome {
	case representation.OutcomeSerialized:
		representationResponseWriter.Header().Set(headers.Representation, decision.Kind)
	case representation.OutcomeUnsupportedFormat:

		// nobody can produce the format. the client still deserves to know
		representationResponseWriter.WriteHeader(http.StatusNotAcceptable)
	}

	if err := decision.Serializer.Serialize(representationResponseWriter); err != nil {
		ar.Logger.WarnWith("Failed to serialize response",
			"path", request.URL.Path,
			"kind", decision.Kind,
			"err", errors.GetErrorStackString(err, 10))

		// ignored if the status line was already sent
		representationResponseWriter.WriteHeader(http.StatusInternalServerError)
	}

	representationResponseWriter.flushHeader()
}
