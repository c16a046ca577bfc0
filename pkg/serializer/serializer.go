/*
Copyright 2023 The Dapr Authors
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

// Package serializer defines the generic serialization capability the actor
// codecs delegate to for everything that is not special-cased.
package serializer

import (
	"encoding/json"
)

// Serializer converts arbitrary application values to and from their wire
// representation. Implementations must be safe for concurrent use.
type Serializer interface {
	// ToBytes serializes value to raw bytes. A nil value yields nil bytes.
	ToBytes(value any) ([]byte, error)
	// ToString serializes value to its textual form.
	ToString(value any) (string, error)
	// FromBytes deserializes data into the value pointed to by target.
	FromBytes(data []byte, target any) error
}

// JSONSerializer is the default Serializer. Strings and byte slices pass
// through as raw UTF-8 bytes; every other value is encoded as JSON.
type JSONSerializer struct{}

func (JSONSerializer) ToBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return json.Marshal(value)
}

func (s JSONSerializer) ToString(value any) (string, error) {
	data, err := s.ToBytes(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (JSONSerializer) FromBytes(data []byte, target any) error {
	switch t := target.(type) {
	case *[]byte:
		*t = data
		return nil
	case *string:
		*t = string(data)
		return nil
	}
	return json.Unmarshal(data, target)
}
