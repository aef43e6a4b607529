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

// Package kinds registers every bundled serialization kind
package kinds

import (
	_ "github.com/nuclio/representation/pkg/serialization/cbor"
	_ "github.com/nuclio/representation/pkg/serialization/html"
	_ "github.com/nuclio/representation/pkg/serialization/json"
	_ "github.com/nuclio/representation/pkg/serialization/msgpack"
	_ "github.com/nuclio/representation/pkg/serialization/protobuf"
	_ "github.com/nuclio/representation/pkg/serialization/text"
	_ "github.com/nuclio/representation/pkg/serialization/xml"
	_ "github.com/nuclio/representation/pkg/serialization/yaml"
)
