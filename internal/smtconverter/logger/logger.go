/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package logger provides centralized logging functionality for the submodel template converter.
//
// The extraction, validation and emitter passes never fail on malformed input; every
// ambiguity they encounter is reported through this package instead.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/FriedJannik/aas-go-sdk/stringification"
	"github.com/FriedJannik/aas-go-sdk/types"
)

// Level is a logging threshold. Messages below the active level are discarded.
type Level int32

const (
	// LevelDebug logs everything.
	LevelDebug Level = iota
	// LevelInfo logs informational messages, warnings and errors.
	LevelInfo
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelError logs errors only.
	LevelError
)

// logger provides structured logging for the converter.
var logger = log.New(os.Stderr, "[SMTConverter] ", log.LstdFlags|log.Lshortfile)

var level atomic.Int32

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING and ERROR (case-insensitive) to a Level.
// Unknown values yield LevelInfo and false.
func ParseLevel(text string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO", "":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	}
	return LevelInfo, false
}

// SetLevel sets the logging threshold.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// GetLevel returns the logging threshold.
func GetLevel() Level {
	return Level(level.Load())
}

func enabled(l Level) bool {
	return l >= GetLevel()
}

// LogError logs an error with context information.
//
// Parameters:
//   - context: A description of where/when the error occurred
//   - err: The error that occurred
func LogError(context string, err error) {
	if err != nil && enabled(LevelError) {
		_ = logger.Output(2, fmt.Sprintf("ERROR: %s: %v", context, err))
	}
}

// LogInfo logs an informational message.
//
// Parameters:
//   - message: The message to log
func LogInfo(message string) {
	if enabled(LevelInfo) {
		_ = logger.Output(2, "INFO: "+message)
	}
}

// LogWarning logs a warning message.
//
// Parameters:
//   - message: The warning message to log
func LogWarning(message string) {
	if enabled(LevelWarn) {
		_ = logger.Output(2, "WARN: "+message)
	}
}

// LogDebug logs a debug message.
//
// Parameters:
//   - message: The debug message to log
func LogDebug(message string) {
	if enabled(LevelDebug) {
		_ = logger.Output(2, "DEBUG: "+message)
	}
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		_ = logger.Output(2, "ERROR: "+fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		_ = logger.Output(2, "WARN: "+fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		_ = logger.Output(2, "INFO: "+fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		_ = logger.Output(2, "DEBUG: "+fmt.Sprintf(format, args...))
	}
}

// LogUnmappedModelType logs an AAS element of a model type the template reader does not map.
//
// Parameters:
//   - modelType: The model type of the skipped element
//   - idShort: The idShort of the skipped element
func LogUnmappedModelType(modelType types.ModelType, idShort string) {
	name, ok := stringification.ModelTypeToString(modelType)
	if !ok {
		name = fmt.Sprintf("ModelType(%d)", modelType)
	}
	Warnf("skipping %s element '%s': no template mapping", name, idShort)
}
