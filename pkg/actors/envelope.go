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
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// The runtime exchanges opaque payloads wrapped in a JSON envelope holding
// the bytes base64-encoded under a fixed "data" field. The base64 step lives
// here, not in the field codecs, so the framing can change independently.

const envelopeDataField = "data"

// marshalEnvelope wraps data in the runtime's payload envelope. Absent bytes
// produce an empty envelope rather than a "data" field.
func marshalEnvelope(data []byte) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}
	envelope := struct {
		Data string `json:"data"`
	}{
		Data: base64.StdEncoding.EncodeToString(data),
	}
	return json.Marshal(&envelope)
}

// unmarshalEnvelope extracts the payload bytes from a runtime envelope. It
// returns nil bytes, not an error, when the envelope parses but carries no
// usable "data" field; only unparsable JSON fails.
func unmarshalEnvelope(payload []byte) ([]byte, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON whose root is not an object has no "data" field.
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	raw, ok := root[envelopeDataField]
	if !ok {
		return nil, nil
	}

	var encoded *string
	if err := json.Unmarshal(raw, &encoded); err != nil || encoded == nil {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		return nil, nil
	}
	return data, nil
}
