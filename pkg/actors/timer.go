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

// ActorTimer describes a scheduled, possibly repeating, callback invocation
// registered against an actor. Timers are immutable once constructed and are
// serialized once per registration call.
type ActorTimer struct {
	dueTime  time.Duration
	period   time.Duration
	callback string
	state    any
}

// NewActorTimer returns a timer firing after dueTime and then every period,
// invoking the named callback method. The callback name is required; state is
// optional typed data handed back to the actor on each invocation.
func NewActorTimer(dueTime, period time.Duration, callback string, state any) *ActorTimer {
	return &ActorTimer{
		dueTime:  dueTime,
		period:   period,
		callback: callback,
		state:    state,
	}
}

// DueTime returns the delay before the first invocation.
func (t *ActorTimer) DueTime() time.Duration {
	return t.dueTime
}

// Period returns the interval between repeated invocations.
func (t *ActorTimer) Period() time.Duration {
	return t.period
}

// Callback returns the name of the actor method to invoke.
func (t *ActorTimer) Callback() string {
	return t.callback
}

// State returns the optional state passed to the callback, or nil.
func (t *ActorTimer) State() any {
	return t.state
}
