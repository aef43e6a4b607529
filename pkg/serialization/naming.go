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

package serialization

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// NameFor returns the name an object is presented under when no alias was given. structs and other
// named types are named after their type (lower camel case), slices and arrays after their element
// with a "List" suffix
func NameFor(object interface{}) string {
	if object == nil {
		return "null"
	}

	return nameForType(reflect.TypeOf(object))
}

func nameForType(objectType reflect.Type) string {
	for objectType.Kind() == reflect.Ptr {
		objectType = objectType.Elem()
	}

	if objectType.Name() != "" {
		return lowerFirst(objectType.Name())
	}

	switch objectType.Kind() {
	case reflect.Slice, reflect.Array:
		return nameForType(objectType.Elem()) + "List"
	case reflect.Interface:
		return "object"
	default:
		return objectType.Kind().String()
	}
}

func lowerFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(first)) + name[size:]
}
