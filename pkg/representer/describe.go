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
	"strings"

	"github.com/nuclio/representation/pkg/format"
	"github.com/nuclio/representation/pkg/serialization"

	"github.com/samber/lo"
)

// SerializationInfo describes a candidate and its place in the priority order
type SerializationInfo struct {
	Priority    int      `json:"priority" xml:"priority"`
	Kind        string   `json:"kind" xml:"kind"`
	Namespace   string   `json:"namespace" xml:"namespace"`
	Application bool     `json:"application" xml:"application"`
	Formats     []string `json:"formats" xml:"formats>format"`
	MediaTypes  []string `json:"mediaTypes,omitempty" xml:"mediaTypes>mediaType,omitempty"`
}

// SerializationInfos renders as a table in text form
type SerializationInfos []*SerializationInfo

func (si SerializationInfos) GetTableHeader() []interface{} {
	return []interface{}{"Priority", "Kind", "Namespace", "Application", "Formats"}
}

func (si SerializationInfos) GetTableRecords() [][]interface{} {
	return lo.Map(si, func(info *SerializationInfo, _ int) []interface{} {
		return []interface{}{
			info.Priority,
			info.Kind,
			info.Namespace,
			info.Application,
			strings.Join(info.Formats, ", "),
		}
	})
}

// DescribeCandidates describes candidates in the order given. media types are resolved through
// acceptHeaderToFormat when it is not nil
func DescribeCandidates(candidates []*serialization.Candidate,
	applicationNamespace string,
	acceptHeaderToFormat *format.AcceptHeaderToFormat) SerializationInfos {
	applicationNamespaceFirst := serialization.ApplicationNamespaceFirst{
		Namespace: applicationNamespace,
	}

	infos := SerializationInfos{}
	for candidateIndex, candidate := range candidates {
		info := &SerializationInfo{
			Priority:    candidateIndex,
			Kind:        candidate.Kind,
			Namespace:   candidate.Namespace,
			Application: applicationNamespaceFirst.InNamespace(candidate.Namespace),
			Formats:     candidate.GetFormats(),
		}

		if acceptHeaderToFormat != nil {
			info.MediaTypes = lo.FlatMap(info.Formats, func(candidateFormat string, _ int) []string {
				return acceptHeaderToFormat.GetMediaTypes(candidateFormat)
			})
		}

		infos = append(infos, info)
	}

	return infos
}
