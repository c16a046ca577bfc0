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

// Package logger provides the named, structured loggers used across the SDK.
package logger

import (
	"strings"
	"sync"
)

const (
	// LogTypeLog is the log type for ordinary log entries.
	LogTypeLog = "log"
	// LogTypeRequest is the log type for request entries.
	LogTypeRequest = "request"

	logFieldTimeStamp = "time"
	logFieldLevel     = "level"
	logFieldType      = "log_type"
	logFieldScope     = "scope"
	logFieldMessage   = "message"
	logFieldInstance  = "instance"
	logFieldSDKVer    = "ver"
	logFieldAppID     = "app_id"
)

// LogLevel is the log verbosity.
type LogLevel string

const (
	// DebugLevel has verbose message.
	DebugLevel LogLevel = "debug"
	// InfoLevel is the default log level.
	InfoLevel LogLevel = "info"
	// WarnLevel is for logging messages about possible issues.
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for logging errors.
	ErrorLevel LogLevel = "error"
	// FatalLevel is for logging fatal messages. The process exits after logging.
	FatalLevel LogLevel = "fatal"
	// UndefinedLevel is for undefined log level.
	UndefinedLevel LogLevel = "undefined"
)

// Logger includes the logging api used by the SDK.
type Logger interface {
	// EnableJSONOutput enables JSON formatted output log.
	EnableJSONOutput(enabled bool)
	// SetAppID sets the app_id field in the structured log output.
	SetAppID(id string)
	// SetOutputLevel sets the log output level.
	SetOutputLevel(outputLevel LogLevel)
	// WithLogType changes the log_type field. Default value is LogTypeLog.
	WithLogType(logType string) Logger

	// Info logs a message at level Info.
	Info(args ...interface{})
	// Infof logs a message at level Info.
	Infof(format string, args ...interface{})
	// Debug logs a message at level Debug.
	Debug(args ...interface{})
	// Debugf logs a message at level Debug.
	Debugf(format string, args ...interface{})
	// Warn logs a message at level Warn.
	Warn(args ...interface{})
	// Warnf logs a message at level Warn.
	Warnf(format string, args ...interface{})
	// Error logs a message at level Error.
	Error(args ...interface{})
	// Errorf logs a message at level Error.
	Errorf(format string, args ...interface{})
	// Fatal logs a message at level Fatal then the process will exit with status set to 1.
	Fatal(args ...interface{})
	// Fatalf logs a message at level Fatal then the process will exit with status set to 1.
	Fatalf(format string, args ...interface{})
}

var (
	globalLoggers     = map[string]Logger{}
	globalLoggersLock = sync.RWMutex{}
)

// toLogLevel converts a level name to LogLevel.
func toLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	}
	return UndefinedLevel
}

// NewLogger creates the named Logger, reusing an existing instance when the
// name was seen before.
func NewLogger(name string) Logger {
	globalLoggersLock.Lock()
	defer globalLoggersLock.Unlock()

	logger, ok := globalLoggers[name]
	if !ok {
		logger = newSDKLogger(name)
		globalLoggers[name] = logger
	}

	return logger
}

func getLoggers() map[string]Logger {
	globalLoggersLock.RLock()
	defer globalLoggersLock.RUnlock()

	l := map[string]Logger{}
	for k, v := range globalLoggers {
		l[k] = v
	}

	return l
}
