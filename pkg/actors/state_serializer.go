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

// Package actors implements the serialization layer exchanged with the Dapr
// runtime's actor API: timers, reminder parameters, and the payload envelope.
package actors

import (
	"encoding/json"
	"fmt"

	"github.com/dapr/go-actors/pkg/durations"
	"github.com/dapr/go-actors/pkg/logger"
	"github.com/dapr/go-actors/pkg/serializer"
)

var log = logger.NewLogger("dapr.actors.serialization")

// timerWire and reminderWire pin the field names and emission order of the
// runtime's wire contract. The mapping stays here rather than on the types so
// that only the exact concrete types get the compact encoding.
type timerWire struct {
	DueTime  string  `json:"dueTime"`
	Period   string  `json:"period"`
	Callback string  `json:"callback"`
	Data     *string `json:"data,omitempty"`
}

type reminderWire struct {
	DueTime string  `json:"dueTime"`
	Period  string  `json:"period"`
	Data    *string `json:"data,omitempty"`
}

// ActorStateSerializer converts actor-related values to and from the wire
// format consumed by the runtime. Timers and reminder parameters receive a
// hand-built compact JSON encoding; every other value is delegated to the
// generic Serializer. All methods are stateless and safe for concurrent use.
type ActorStateSerializer struct {
	serializer serializer.Serializer
}

// NewActorStateSerializer returns a serializer delegating generic values to
// s. Passing nil selects the default JSON serializer.
func NewActorStateSerializer(s serializer.Serializer) *ActorStateSerializer {
	if s == nil {
		s = serializer.JSONSerializer{}
	}
	return &ActorStateSerializer{serializer: s}
}

// SerializeString serializes value to its textual wire form. Only the exact
// concrete types ActorTimer and ActorReminderParams are special-cased;
// wrapper or derived types take the generic path. A nil value yields "".
func (a *ActorStateSerializer) SerializeString(value any) (string, error) {
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case *ActorTimer:
		return a.serializeTimer(v)
	case ActorTimer:
		return a.serializeTimer(&v)
	case *ActorReminderParams:
		return a.serializeReminder(v)
	case ActorReminderParams:
		return a.serializeReminder(&v)
	}

	return a.serializer.ToString(value)
}

// Deserialize converts value, a string or byte slice wire payload, into the
// value pointed to by target. Only *ActorReminderParams targets take the
// hand-built decoding path; there is deliberately no matching special case
// for timers, which the runtime never sends back.
func (a *ActorStateSerializer) Deserialize(value any, target any) error {
	if params, ok := target.(*ActorReminderParams); ok {
		return a.deserializeReminder(value, params)
	}

	data, err := payloadBytes(value)
	if err != nil {
		return err
	}
	return a.serializer.FromBytes(data, target)
}

// WrapData serializes value with the generic serializer and wraps the bytes
// in the runtime's payload envelope. A nil value yields a nil payload, never
// an empty envelope.
func (a *ActorStateSerializer) WrapData(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	data, err := a.serializer.ToBytes(value)
	if err != nil {
		return nil, err
	}
	return marshalEnvelope(data)
}

// UnwrapData extracts the payload carried in a runtime envelope and
// deserializes it into the value pointed to by target. A nil payload, an
// envelope without data, and data that does not hold base64 bytes all leave
// target untouched. The inner deserialization goes through Deserialize, so an
// unwrapped payload may itself be reminder parameters.
func (a *ActorStateSerializer) UnwrapData(payload []byte, target any) error {
	if payload == nil {
		return nil
	}

	data, err := unmarshalEnvelope(payload)
	if err != nil {
		return err
	}
	if data == nil {
		log.Debug("payload envelope carries no data")
		return nil
	}

	if err := a.Deserialize(string(data), target); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return nil
}

func (a *ActorStateSerializer) serializeTimer(timer *ActorTimer) (string, error) {
	if timer == nil {
		return "", nil
	}

	wire := timerWire{
		DueTime:  durations.ToDaprFormat(timer.DueTime()),
		Period:   durations.ToDaprFormat(timer.Period()),
		Callback: timer.Callback(),
	}
	if timer.State() != nil {
		// Timer state may itself be one of the special types.
		data, err := a.SerializeString(timer.State())
		if err != nil {
			return "", err
		}
		wire.Data = &data
	}

	return marshalWire(&wire)
}

func (a *ActorStateSerializer) serializeReminder(reminder *ActorReminderParams) (string, error) {
	if reminder == nil {
		return "", nil
	}

	wire := reminderWire{
		DueTime: durations.ToDaprFormat(reminder.DueTime()),
		Period:  durations.ToDaprFormat(reminder.Period()),
	}
	if data, ok := reminder.Data(); ok {
		wire.Data = &data
	}

	return marshalWire(&wire)
}

func (a *ActorStateSerializer) deserializeReminder(value any, params *ActorReminderParams) error {
	raw, err := payloadBytes(value)
	if err != nil {
		return err
	}

	var wire struct {
		DueTime *string `json:"dueTime"`
		Period  *string `json:"period"`
		Data    *string `json:"data"`
	}
	if err := unmarshalWire(raw, &wire); err != nil {
		return err
	}
	if wire.DueTime == nil {
		return fmt.Errorf("%w: dueTime", ErrMissingField)
	}
	if wire.Period == nil {
		return fmt.Errorf("%w: period", ErrMissingField)
	}

	dueTime, err := durations.FromDaprFormat(*wire.DueTime)
	if err != nil {
		return err
	}
	period, err := durations.FromDaprFormat(*wire.Period)
	if err != nil {
		return err
	}

	// Assign only after every field parsed, so a failure never leaves the
	// target half-populated.
	if wire.Data != nil {
		*params = *NewActorReminderParamsWithData(dueTime, period, *wire.Data)
	} else {
		*params = *NewActorReminderParams(dueTime, period)
	}
	return nil
}

func marshalWire(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalWire(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return nil
}

// payloadBytes normalizes an inbound wire payload to raw bytes.
func payloadBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported payload type %T", ErrDeserialization, value)
}
