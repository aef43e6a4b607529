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

package page

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/nuclio/representation/pkg/common"
	"github.com/nuclio/representation/pkg/common/headers"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

const builtinTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ range $key, $value := . }}{{ $key }} {{ end }}</title></head>
<body>
{{- range $key, $value := . }}
<section id="{{ $key }}">
<h2>{{ $key }}</h2>
<pre>{{ printf "%+v" $value }}</pre>
</section>
{{- end }}
</body>
</html>
`

// Model holds the values a page is rendered with
type Model map[string]interface{}

// Result renders the default page of a single response
type Result interface {

	// Include adds a value to the page model
	Include(key string, value interface{})

	// DefaultView renders the default page with the included values
	DefaultView() error
}

// Provider creates page results bound to a response
type Provider interface {
	NewResult(responseWriter http.ResponseWriter) Result
}

// TemplateRenderer renders pages from html templates
type TemplateRenderer struct {
	logger          logger.Logger
	templates       *template.Template
	defaultTemplate string
}

// NewTemplateRenderer creates a renderer from *.html templates found in templatesFS. a nil
// templatesFS creates a renderer holding only the built-in template, named after defaultTemplate
func NewTemplateRenderer(parentLogger logger.Logger,
	templatesFS fs.FS,
	defaultTemplate string) (*TemplateRenderer, error) {
	var err error

	newTemplateRenderer := &TemplateRenderer{
		logger:          parentLogger.GetChild("page"),
		defaultTemplate: defaultTemplate,
	}

	newTemplateRenderer.templates, err = template.New(defaultTemplate).Parse(builtinTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse built-in template")
	}

	if templatesFS != nil {
		newTemplateRenderer.templates, err = newTemplateRenderer.templates.ParseFS(templatesFS, "*.html")
		if err != nil {
			return nil, errors.Wrap(err, "Failed to parse page templates")
		}
	}

	newTemplateRenderer.logger.DebugWith("Created template renderer",
		"defaultTemplate", defaultTemplate,
		"templates", newTemplateRenderer.templates.DefinedTemplates())

	return newTemplateRenderer, nil
}

// NewTemplateRendererFromDir creates a renderer from the *.html templates in a directory. an empty
// directory path uses the built-in template only
func NewTemplateRendererFromDir(parentLogger logger.Logger,
	templatesDir string,
	defaultTemplate string) (*TemplateRenderer, error) {
	if templatesDir == "" {
		return NewTemplateRenderer(parentLogger, nil, defaultTemplate)
	}

	if !common.IsDir(templatesDir) {
		return nil, errors.Errorf("Page templates directory not found: %s", templatesDir)
	}

	return NewTemplateRenderer(parentLogger, os.DirFS(templatesDir), defaultTemplate)
}

// Render renders a template by name
func (tr *TemplateRenderer) Render(writer io.Writer, templateName string, model Model) error {
	if tr.templates.Lookup(templateName) == nil {
		return errors.Errorf("Template not found: %s", templateName)
	}

	if err := tr.templates.ExecuteTemplate(writer, templateName, model); err != nil {
		return errors.Wrapf(err, "Failed to render template %s", templateName)
	}

	return nil
}

// NewResult returns a page result rendering the default template to responseWriter
func (tr *TemplateRenderer) NewResult(responseWriter http.ResponseWriter) Result {
	return NewTemplateResult(tr, responseWriter, tr.defaultTemplate)
}

// TemplateResult renders a single template to a response
type TemplateResult struct {
	renderer       *TemplateRenderer
	responseWriter http.ResponseWriter
	templateName   string
	model          Model
}

func NewTemplateResult(renderer *TemplateRenderer,
	responseWriter http.ResponseWriter,
	templateName string) *TemplateResult {
	return &TemplateResult{
		renderer:       renderer,
		responseWriter: responseWriter,
		templateName:   templateName,
		model:          Model{},
	}
}

func (tr *TemplateResult) Include(key string, value interface{}) {
	tr.model[key] = value
}

func (tr *TemplateResult) DefaultView() error {
	tr.responseWriter.Header().Set(headers.ContentType, "text/html; charset=utf-8")

	return tr.renderer.Render(tr.responseWriter, tr.templateName, tr.model)
}
