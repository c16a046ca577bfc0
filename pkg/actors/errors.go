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

package actors

import (
	"errors"
)

var (
	// ErrMalformedEnvelope is returned when the root of a wire envelope
	// cannot be parsed as JSON.
	ErrMalformedEnvelope = errors.New("malformed payload envelope")

	// ErrMissingField is returned when a required field is absent while
	// decoding reminder parameters.
	ErrMissingField = errors.New("missing required field")

	// ErrDeserialization is returned when an inner payload cannot be
	// converted to the requested type.
	ErrDeserialization = errors.New("cannot deserialize payload")
)
