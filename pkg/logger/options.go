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

package logger

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	defaultJSONOutput  = false
	defaultOutputLevel = "info"
	undefinedAppID     = ""
)

// Options defines the sets of options for SDK logging.
type Options struct {
	// appID is the unique id of the application using this SDK.
	appID string

	// JSONFormatEnabled is the flag to enable JSON formatted log.
	JSONFormatEnabled bool

	// OutputLevel is the level of logging.
	OutputLevel string
}

// envOptions are the log settings read from the process environment.
type envOptions struct {
	Level  string `envconfig:"DAPR_LOG_LEVEL"`
	AsJSON bool   `envconfig:"DAPR_LOG_AS_JSON"`
}

// SetOutputLevel sets the log output level.
func (o *Options) SetOutputLevel(outputLevel string) error {
	if toLogLevel(outputLevel) == UndefinedLevel {
		return fmt.Errorf("undefined Log Output Level: %s", outputLevel)
	}
	o.OutputLevel = outputLevel
	return nil
}

// SetAppID sets the app id.
func (o *Options) SetAppID(id string) {
	o.appID = id
}

// AttachCmdFlags attaches log options to command flags.
func (o *Options) AttachCmdFlags(
	stringVar func(p *string, name string, value string, usage string),
	boolVar func(p *bool, name string, value bool, usage string),
) {
	if stringVar != nil {
		stringVar(
			&o.OutputLevel,
			"log-level",
			defaultOutputLevel,
			"Options are debug, info, warn, error, or fatal (default info)")
	}
	if boolVar != nil {
		boolVar(
			&o.JSONFormatEnabled,
			"log-as-json",
			defaultJSONOutput,
			"print log as JSON (default false)")
	}
}

// DefaultOptions returns default values of Options.
func DefaultOptions() Options {
	return Options{
		JSONFormatEnabled: defaultJSONOutput,
		appID:             undefinedAppID,
		OutputLevel:       defaultOutputLevel,
	}
}

// OptionsFromEnvironment returns default options with any overrides found in
// the process environment applied.
func OptionsFromEnvironment() (Options, error) {
	o := DefaultOptions()

	var env envOptions
	if err := envconfig.Process("", &env); err != nil {
		return o, err
	}
	if env.Level != "" {
		if err := o.SetOutputLevel(env.Level); err != nil {
			return o, err
		}
	}
	if env.AsJSON {
		o.JSONFormatEnabled = true
	}

	return o, nil
}

// ApplyOptionsToLoggers applies options to all registered loggers.
func ApplyOptionsToLoggers(options *Options) error {
	logLevel := toLogLevel(options.OutputLevel)
	if logLevel == UndefinedLevel {
		return fmt.Errorf("undefined Log Output Level: %s", options.OutputLevel)
	}

	internalLoggers := getLoggers()
	for _, v := range internalLoggers {
		// JSON output resets the structured fields, so app id goes last.
		v.EnableJSONOutput(options.JSONFormatEnabled)
		if options.appID != undefinedAppID {
			v.SetAppID(options.appID)
		}
		v.SetOutputLevel(logLevel)
	}

	return nil
}
