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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToISO8601DateTimeString(t *testing.T) {
	testDateTime, err := time.Parse(time.RFC3339Nano, "2020-01-02T15:04:05.123Z")
	assert.NoError(t, err)

	assert.Equal(t, "2020-01-02T15:04:05.123Z", ToISO8601DateTimeString(testDateTime))
}
