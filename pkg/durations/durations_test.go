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

package durations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDaprFormat(t *testing.T) {
	tests := map[string]struct {
		duration time.Duration
		want     string
	}{
		"zero":                      {0, "0h0m0s0ms"},
		"five seconds":              {5 * time.Second, "0h0m5s0ms"},
		"compound":                  {4*time.Hour + 15*time.Minute + 50*time.Second + 60*time.Millisecond, "4h15m50s60ms"},
		"days fold into hours":      {26*time.Hour + 30*time.Minute, "26h30m0s0ms"},
		"milliseconds only":         {500 * time.Millisecond, "0h0m0s500ms"},
		"negative":                  {-(time.Hour + time.Minute + time.Second + 500*time.Millisecond), "-1h1m1s500ms"},
		"sub-millisecond truncated": {5*time.Second + 600*time.Microsecond, "0h0m5s0ms"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDaprFormat(tt.duration))
		})
	}
}

func TestFromDaprFormat(t *testing.T) {
	tests := map[string]struct {
		value string
		want  time.Duration
	}{
		"zero":         {"0h0m0s0ms", 0},
		"five seconds": {"0h0m5s0ms", 5 * time.Second},
		"compound":     {"4h15m50s60ms", 4*time.Hour + 15*time.Minute + 50*time.Second + 60*time.Millisecond},
		"large hours":  {"26h30m0s0ms", 26*time.Hour + 30*time.Minute},
		"negative":     {"-1h1m1s500ms", -(time.Hour + time.Minute + time.Second + 500*time.Millisecond)},
		"unnormalized": {"0h0m90s0ms", 90 * time.Second},
		"large millis": {"0h0m0s2500ms", 2500 * time.Millisecond},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FromDaprFormat(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromDaprFormatMalformed(t *testing.T) {
	for _, value := range []string{
		"",
		"5s",
		"PT5S",
		"1h2m3s",
		"0h0m0s0",
		"0h0m0s0ms extra",
		"h0m0s0ms",
		"0h0m0s0MS",
		"1d0h0m0s0ms",
		"--1h0m0s0ms",
		"one hour",
	} {
		t.Run(value, func(t *testing.T) {
			_, err := FromDaprFormat(value)
			require.ErrorIs(t, err, ErrMalformedDuration)
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		0,
		time.Millisecond,
		5 * time.Second,
		time.Minute + 30*time.Second,
		4*time.Hour + 15*time.Minute + 50*time.Second + 60*time.Millisecond,
		49*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond,
		-5 * time.Second,
		-(26*time.Hour + 1*time.Millisecond),
	} {
		got, err := FromDaprFormat(ToDaprFormat(d))
		require.NoError(t, err)
		assert.Equal(t, d, got, "round trip of %s", d)
	}
}
