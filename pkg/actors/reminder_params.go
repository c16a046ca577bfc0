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
	"time"
)

// ActorReminderParams carries the schedule of a durable reminder persisted by
// the runtime. Unlike a timer's state, the optional data is already a
// pre-serialized string and travels to the runtime verbatim.
type ActorReminderParams struct {
	dueTime time.Duration
	period  time.Duration
	data    string
	hasData bool
}

// NewActorReminderParams returns reminder parameters without data.
func NewActorReminderParams(dueTime, period time.Duration) *ActorReminderParams {
	return &ActorReminderParams{
		dueTime: dueTime,
		period:  period,
	}
}

// NewActorReminderParamsWithData returns reminder parameters carrying a
// pre-serialized data string.
func NewActorReminderParamsWithData(dueTime, period time.Duration, data string) *ActorReminderParams {
	return &ActorReminderParams{
		dueTime: dueTime,
		period:  period,
		data:    data,
		hasData: true,
	}
}

// DueTime returns the delay before the first trigger.
func (r *ActorReminderParams) DueTime() time.Duration {
	return r.dueTime
}

// Period returns the interval between repeated triggers.
func (r *ActorReminderParams) Period() time.Duration {
	return r.period
}

// Data returns the pre-serialized reminder data and whether it is set.
func (r *ActorReminderParams) Data() (string, bool) {
	return r.data, r.hasData
}
