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

package representationconfig

import (
	"io"
	"os"

	"github.com/nuclio/representation/pkg/common"

	"github.com/nuclio/errors"
	"sigs.k8s.io/yaml"
)

type Reader struct{}

func NewReader() (*Reader, error) {
	return &Reader{}, nil
}

// Read overlays the configuration read from reader on top of config and validates the result
func (r *Reader) Read(reader io.Reader, config *Config) error {
	configBytes, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "Failed to read configuration")
	}

	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return errors.Wrap(err, "Failed to unmarshal configuration")
	}

	return config.Validate()
}

func (r *Reader) ReadFileOrDefault(configurationPath string) (*Config, error) {
	configuration := r.GetDefaultConfiguration()

	// if there's no configuration file, return a default configuration. otherwise read it over the defaults
	if !common.IsFile(configurationPath) {
		return configuration, nil
	}

	configurationFile, err := os.Open(configurationPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open configuration file %s", configurationPath)
	}

	// close after
	defer configurationFile.Close() // nolint: errcheck

	if err := r.Read(configurationFile, configuration); err != nil {
		return nil, errors.Wrapf(err, "Failed to read configuration file %s", configurationPath)
	}

	return configuration, nil
}

func (r *Reader) GetDefaultConfiguration() *Config {
	defaultFormat := DefaultFormat

	// values are unmarshalled into these pointers, so each field gets its own
	enabled := func() *bool {
		trueValue := true
		return &trueValue
	}

	return &Config{
		WebServer: WebServer{
			Enabled:       enabled(),
			ListenAddress: ":8070",
		},
		Metrics: Metrics{
			Enabled: enabled(),
			Path:    "/metrics",
		},
		HealthCheck: HealthCheck{
			Enabled:            enabled(),
			GoroutineThreshold: DefaultGoroutineThreshold,
		},
		Logger: Logger{
			Level: "debug",
		},
		Representation: Representation{
			ApplicationNamespace: DefaultApplicationNamespace,
			DefaultFormat:        &defaultFormat,
			FormatParameter:      DefaultFormatParameter,
			DefaultTemplate:      DefaultTemplate,
		},
	}
}
