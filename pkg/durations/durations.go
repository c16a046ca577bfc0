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

// Package durations converts time.Duration values to and from the compound
// duration format used by the Dapr runtime, e.g. "4h15m50s60ms". The grammar
// is part of the runtime's wire contract and must not change.
package durations

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedDuration is returned when a string does not match the runtime's
// duration grammar.
var ErrMalformedDuration = errors.New("malformed duration")

// Days are folded into the hours component, so "26h0m0s0ms" is valid.
var pattern = regexp.MustCompile(`^(-)?(\d+)h(\d+)m(\d+)s(\d+)ms$`)

// ToDaprFormat converts a duration to the runtime's textual format. Negative
// durations carry a leading sign. Precision below one millisecond is
// truncated; the runtime grammar cannot express it.
func ToDaprFormat(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond

	return fmt.Sprintf("%s%dh%dm%ds%dms", sign, hours, minutes, seconds, millis)
}

// FromDaprFormat parses a duration in the runtime's textual format. It is the
// exact inverse of ToDaprFormat for every duration the grammar can express.
func FromDaprFormat(from string) (time.Duration, error) {
	match := pattern.FindStringSubmatch(from)
	if match == nil {
		return 0, fmt.Errorf("%w: unsupported duration format %q", ErrMalformedDuration, from)
	}

	units := [...]time.Duration{time.Hour, time.Minute, time.Second, time.Millisecond}
	duration := time.Duration(0)
	for i, unit := range units {
		val, err := strconv.Atoi(match[i+2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrMalformedDuration, from, err)
		}
		duration += unit * time.Duration(val)
	}
	if match[1] == "-" {
		duration = -duration
	}

	return duration, nil
}
