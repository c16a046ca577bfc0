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
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dapr/go-actors/pkg/version"
	"github.com/dapr/go-actors/utils"
)

// sdkLogger is the logrus-backed implementation of Logger.
type sdkLogger struct {
	// name is the name of logger that is published to log as a scope.
	name string
	// jsonFormatEnabled is a flag to turn on JSON formatted log.
	jsonFormatEnabled bool
	// logger is the instance of logrus logger.
	logger *logrus.Entry
}

func newSDKLogger(name string) *sdkLogger {
	newLogger := logrus.New()

	dl := &sdkLogger{
		name:              name,
		jsonFormatEnabled: defaultJSONOutput,
		logger: newLogger.WithFields(logrus.Fields{
			logFieldScope: name,
			logFieldType:  LogTypeLog,
		}),
	}

	dl.EnableJSONOutput(defaultJSONOutput)

	return dl
}

// EnableJSONOutput enables JSON formatted output log.
func (l *sdkLogger) EnableJSONOutput(enabled bool) {
	var formatter logrus.Formatter

	l.jsonFormatEnabled = enabled
	fieldMap := logrus.FieldMap{
		// If time field name is conflicted, logrus adds "fields." prefix.
		// So rename to unused field @time to avoid the confliction.
		logrus.FieldKeyTime:  "@time",
		logrus.FieldKeyLevel: logFieldLevel,
		logrus.FieldKeyMsg:   logFieldMessage,
	}

	l.logger.Data = logrus.Fields{
		logFieldScope: l.logger.Data[logFieldScope],
		logFieldType:  LogTypeLog,
	}

	if enabled {
		hostname, _ := os.Hostname()
		l.logger.Data[logFieldInstance] = hostname
		l.logger.Data[logFieldSDKVer] = version.Version()

		formatter = &logrus.JSONFormatter{
			DisableTimestamp: true,
			FieldMap:         fieldMap,
		}
	} else {
		formatter = &logrus.TextFormatter{
			DisableTimestamp: true,
			FieldMap:         fieldMap,
		}
	}

	l.logger.Logger.SetFormatter(formatter)
}

// SetAppID sets the app_id field in the structured log output.
func (l *sdkLogger) SetAppID(id string) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldAppID] = id
	}
}

func toLogrusLevel(lvl LogLevel) logrus.Level {
	// ignore error because it will never happen
	l, _ := logrus.ParseLevel(string(lvl))
	return l
}

// SetOutputLevel sets the log output level.
func (l *sdkLogger) SetOutputLevel(outputLevel LogLevel) {
	l.logger.Logger.SetLevel(toLogrusLevel(outputLevel))
}

// WithLogType specifies the log_type field in log. Default value is LogTypeLog.
func (l *sdkLogger) WithLogType(logType string) Logger {
	return &sdkLogger{
		name:              l.name,
		jsonFormatEnabled: l.jsonFormatEnabled,
		logger:            l.logger.WithField(logFieldType, logType),
	}
}

// Info logs a message at level Info.
func (l *sdkLogger) Info(args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Log(logrus.InfoLevel, args...)
}

// Infof logs a message at level Info.
func (l *sdkLogger) Infof(format string, args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Logf(logrus.InfoLevel, format, args...)
}

// Debug logs a message at level Debug.
func (l *sdkLogger) Debug(args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Log(logrus.DebugLevel, args...)
}

// Debugf logs a message at level Debug.
func (l *sdkLogger) Debugf(format string, args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Logf(logrus.DebugLevel, format, args...)
}

// Warn logs a message at level Warn.
func (l *sdkLogger) Warn(args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Log(logrus.WarnLevel, args...)
}

// Warnf logs a message at level Warn.
func (l *sdkLogger) Warnf(format string, args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Logf(logrus.WarnLevel, format, args...)
}

// Error logs a message at level Error.
func (l *sdkLogger) Error(args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Log(logrus.ErrorLevel, args...)
}

// Errorf logs a message at level Error.
func (l *sdkLogger) Errorf(format string, args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Logf(logrus.ErrorLevel, format, args...)
}

// Fatal logs a message at level Fatal then the process will exit with status set to 1.
func (l *sdkLogger) Fatal(args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Fatal(args...)
}

// Fatalf logs a message at level Fatal then the process will exit with status set to 1.
func (l *sdkLogger) Fatalf(format string, args ...interface{}) {
	if l.jsonFormatEnabled {
		l.logger.Data[logFieldTimeStamp] = utils.ToISO8601DateTimeString(time.Now())
	}
	l.logger.Fatalf(format, args...)
}
