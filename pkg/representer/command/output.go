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
	"io"
	"net/http"

	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/page"
	"github.com/nuclio/representation/pkg/representation"
	"github.com/nuclio/representation/pkg/serialization"
	"github.com/nuclio/representation/pkg/status"

	"github.com/nuclio/errors"
	"github.com/nuclio/nuclio-sdk-go"
)

// outputWriter lets serializers write to a plain writer
type outputWriter struct {
	writer     io.Writer
	header     http.Header
	statusCode int
}

func newOutputWriter(writer io.Writer) *outputWriter {
	return &outputWriter{
		writer:     writer,
		header:     http.Header{},
		statusCode: http.StatusOK,
	}
}

func (ow *outputWriter) Header() http.Header {
	return ow.header
}

func (ow *outputWriter) Write(buffer []byte) (int, error) {
	return ow.writer.Write(buffer)
}

func (ow *outputWriter) WriteHeader(statusCode int) {
	ow.statusCode = statusCode
}

func (rc *RootCommandeer) createCandidates() ([]*serialization.Candidate, error) {
	pageRenderer, err := page.NewTemplateRendererFromDir(rc.loggerInstance,
		rc.configuration.Representation.PageTemplatesDir,
		rc.configuration.Representation.DefaultTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create page renderer")
	}

	candidates, err := serialization.CreateCandidates(rc.loggerInstance, rc.configuration, pageRenderer)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create serialization candidates")
	}

	return candidates, nil
}

// represent writes object to writer in the given output format, through the same dispatcher the
// server uses
func (rc *RootCommandeer) represent(writer io.Writer,
	candidates []*serialization.Candidate,
	outputFormat string,
	object interface{},
	alias string) error {
	if outputFormat == "" {
		return nuclio.NewErrBadRequest("Output format must not be empty")
	}

	commandOutputWriter := newOutputWriter(writer)

	decision := representation.NewDefaultResult(rc.loggerInstance,
		format.NewStaticResolver(outputFormat),
		status.NewHTTPStatus(rc.loggerInstance, commandOutputWriter),
		candidates).DispatchWithAlias(object, alias)

	if decision.Outcome != representation.OutcomeSerialized {
		return nuclio.NewErrBadRequest("Unsupported output format: " + outputFormat)
	}

	if err := decision.Serializer.Serialize(commandOutputWriter); err != nil {
		return errors.Wrapf(err, "Failed to write output as %s", outputFormat)
	}

	if commandOutputWriter.statusCode >= http.StatusBadRequest {
		return errors.Errorf("Output as %s failed with status %d", outputFormat, commandOutputWriter.statusCode)
	}

	return nil
}
